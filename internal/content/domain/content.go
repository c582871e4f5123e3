package domain

import "time"

// Paper is a published research paper.
type Paper struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	TitleEn      *string    `json:"titleEn"`
	Abstract     *string    `json:"abstract"`
	AbstractEn   *string    `json:"abstractEn"`
	Content      *string    `json:"content,omitempty"`
	ContentEn    *string    `json:"contentEn,omitempty"`
	PublishTimes *time.Time `json:"paperPublishTimes"`
	OriginalURL  *string    `json:"originalUrl"`
	CreatedTimes time.Time  `json:"createdTimes"`
}

// Patent is a published patent record.
type Patent struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	TitleEn           *string    `json:"titleEn"`
	PublishDate       *time.Time `json:"patentPublishDate"`
	Applicants        *string    `json:"applicants"`
	ApplicationNum    *string    `json:"applicationNum"`
	IsServicePatent   *string    `json:"isServicePatent"`
	ApplicationDate   *time.Time `json:"applicationDate"`
	AuthorizationDate *time.Time `json:"authorizationDate"`
	Abstract          *string    `json:"abstract"`
	AbstractEn        *string    `json:"abstractEn"`
	Content           *string    `json:"content,omitempty"`
	ContentEn         *string    `json:"contentEn,omitempty"`
	CreatedTimes      time.Time  `json:"createdTimes"`
}

// Book is a published book or translation.
type Book struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	TitleEn      *string    `json:"titleEn"`
	Author       *string    `json:"author"`
	AuthorEn     *string    `json:"authorEn"`
	PublishDate  *time.Time `json:"bookPublishDate"`
	BookURL      *string    `json:"bookUrl"`
	IsTranslated *string    `json:"isTranslated"`
	Abstract     *string    `json:"abstract"`
	AbstractEn   *string    `json:"abstractEn"`
	Content      *string    `json:"content,omitempty"`
	ContentEn    *string    `json:"contentEn,omitempty"`
	CreatedTimes time.Time  `json:"createdTimes"`
}

// Notice is an announcement. Type 2002 notices carry their own content and
// are the only kind served by the detail endpoint; the others link out.
type Notice struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	TitleEn      *string    `json:"titleEn"`
	NoticeType   string     `json:"noticeType"`
	Importance   *string    `json:"importance"`
	LinkURL      *string    `json:"linkUrl"`
	Content      *string    `json:"content,omitempty"`
	ContentEn    *string    `json:"contentEn,omitempty"`
	PublishTimes *time.Time `json:"publishTimes"`
	CreatedTimes time.Time  `json:"createdTimes"`
}

// TextNoticeType is the notice_type whose content is served inline.
const TextNoticeType = "2002"

// Dynamic is a news item.
type Dynamic struct {
	ID           int64      `json:"id"`
	Title        string     `json:"title"`
	TitleEn      *string    `json:"titleEn"`
	DynamicType  *string    `json:"dynamicType"`
	Content      *string    `json:"content,omitempty"`
	ContentEn    *string    `json:"contentEn,omitempty"`
	PublishTimes *time.Time `json:"publishTimes"`
	CreatedTimes time.Time  `json:"createdTimes"`
}

// Instrument is a lab instrument listing. ImageFiles is decoded from the
// stored JSON array.
type Instrument struct {
	ID                     int64      `json:"id"`
	InstName               string     `json:"instName"`
	InstNameEn             *string    `json:"instNameEn"`
	Manufacturer           *string    `json:"manufacturer"`
	ManufacturerEn         *string    `json:"manufacturerEn"`
	Model                  *string    `json:"model"`
	WorkingPrinciple       *string    `json:"workingPrinciple,omitempty"`
	WorkingPrincipleEn     *string    `json:"workingPrincipleEn,omitempty"`
	ApplicationScope       *string    `json:"applicationScope,omitempty"`
	ApplicationScopeEn     *string    `json:"applicationScopeEn,omitempty"`
	PerformanceFeatures    *string    `json:"performanceFeatures,omitempty"`
	PerformanceFeaturesEn  *string    `json:"performanceFeaturesEn,omitempty"`
	OtherInfo              *string    `json:"otherInfo,omitempty"`
	OtherInfoEn            *string    `json:"otherInfoEn,omitempty"`
	ImageFiles             []string   `json:"imageFiles"`
	PublishTimes           *time.Time `json:"publishTimes"`
	CreatedTimes           time.Time  `json:"createdTimes"`
}

// Recruit is one open recruitment posting.
type Recruit struct {
	ID              int64      `json:"id"`
	RecruitmentType string     `json:"recruitmentType"`
	Content         *string    `json:"content"`
	ContentEn       *string    `json:"contentEn"`
	PublishTimes    *time.Time `json:"publishTimes"`
	CreatedTimes    time.Time  `json:"createdTimes"`
}

// LabeledRecruit joins a posting with its dictionary label. SortOrder is the
// dictionary's ordering for the posting's type.
type LabeledRecruit struct {
	Recruit
	TypeName   *string
	TypeNameEn *string
	SortOrder  int
}

// RecruitGroup is the postings for one recruitment type. Groups follow the
// dictionary's sort order; a type missing from the dictionary is labeled
// with its raw code.
type RecruitGroup struct {
	RecruitmentType string    `json:"recruitmentType"`
	TypeName        string    `json:"typeName"`
	TypeNameEn      *string   `json:"typeNameEn"`
	Items           []Recruit `json:"items"`
}

// Tool is an external tool or resource link.
type Tool struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	TitleEn       *string    `json:"titleEn"`
	Description   *string    `json:"description"`
	DescriptionEn *string    `json:"descriptionEn"`
	ToolType      *string    `json:"toolType"`
	ToolURL       *string    `json:"toolUrl"`
	PublishTimes  *time.Time `json:"publishTimes"`
	CreatedTimes  time.Time  `json:"createdTimes"`
}

// DictEntry is one row of the shared dictionary table.
type DictEntry struct {
	DictID       string  `json:"dictId"`
	DictType     string  `json:"dictType"`
	DictTypeName *string `json:"dictTypeName"`
	DictValue    *string `json:"dictValue"`
	DictValueEn  *string `json:"dictValueEn"`
	SortOrder    int     `json:"sortOrder"`
	Remark       *string `json:"remark"`
}

// User is a member profile as shown in listings. The stored password column
// is never carried on this type.
type User struct {
	UserID           string    `json:"userId"`
	Username         string    `json:"username"`
	Email            *string   `json:"email"`
	Phone            *string   `json:"phone"`
	Title            *string   `json:"title"`
	Tags             []string  `json:"tags"`
	Avatar           *string   `json:"avatar"`
	IDPic            *string   `json:"idPic"`
	LabHomepage      *string   `json:"labHomepage"`
	PersonalHomepage *string   `json:"personalHomepage"`
	Role             *string   `json:"role"`
	CreatedTimes     time.Time `json:"createdTimes"`
}

// UserDetail joins the base profile with the extended biography columns.
type UserDetail struct {
	User
	Bio                   *string `json:"bio"`
	BioEn                 *string `json:"bioEn"`
	ResearchDirection     *string `json:"researchDirection"`
	ResearchDirectionEn   *string `json:"researchDirectionEn"`
	ResearchProject       *string `json:"researchProject"`
	ResearchProjectEn     *string `json:"researchProjectEn"`
	AcademicAppointment   *string `json:"academicAppointment"`
	AcademicAppointmentEn *string `json:"academicAppointmentEn"`
	Awards                *string `json:"awards"`
	AwardsEn              *string `json:"awardsEn"`
	AcademicResearch      *string `json:"academicResearch"`
	AcademicResearchEn    *string `json:"academicResearchEn"`
	Publications          *string `json:"publications"`
	PublicationsEn        *string `json:"publicationsEn"`
}

// Lab profile types.
const (
	ProfileTypeInstitute      = "5001"
	ProfileTypeLabEnvironment = "5002"
)

// LabProfile is a singleton descriptive page, one published row per type.
type LabProfile struct {
	ID           int64      `json:"id"`
	ProfileType  string     `json:"profileType"`
	Title        *string    `json:"title"`
	Content      *string    `json:"content"`
	ContentEn    *string    `json:"contentEn"`
	PublishTimes *time.Time `json:"publishTimes"`
	CreatedTimes time.Time  `json:"createdTimes"`
}
