package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"eduportal/internal/content/domain"
	"eduportal/internal/content/usecase"
	"eduportal/pkg/apiresponse"
)

// Handler exposes the read-only content endpoints.
type Handler struct {
	research    *usecase.ResearchService
	notices     *usecase.NoticeService
	dynamics    *usecase.DynamicService
	instruments *usecase.InstrumentService
	recruit     *usecase.RecruitService
	tools       *usecase.ToolService
	dict        *usecase.DictService
	users       *usecase.UserService
	profiles    *usecase.ProfileService
	logger      *zap.Logger
}

// Services bundles the content services for handler construction.
type Services struct {
	Research    *usecase.ResearchService
	Notices     *usecase.NoticeService
	Dynamics    *usecase.DynamicService
	Instruments *usecase.InstrumentService
	Recruit     *usecase.RecruitService
	Tools       *usecase.ToolService
	Dict        *usecase.DictService
	Users       *usecase.UserService
	Profiles    *usecase.ProfileService
}

func NewHandler(s Services, logger *zap.Logger) *Handler {
	return &Handler{
		research:    s.Research,
		notices:     s.Notices,
		dynamics:    s.Dynamics,
		instruments: s.Instruments,
		recruit:     s.Recruit,
		tools:       s.Tools,
		dict:        s.Dict,
		users:       s.Users,
		profiles:    s.Profiles,
		logger:      logger,
	}
}

// listRequest is the wire shape shared by the paged list endpoints. The
// type-specific filters are simply ignored by endpoints that do not use
// them.
type listRequest struct {
	PageNo       int    `json:"pageNo"`
	PageSize     int    `json:"pageSize"`
	Title        string `json:"title"`
	Year         int    `json:"year"`
	Month        int    `json:"month"`
	NoticeType   string `json:"noticeType"`
	Importance   string `json:"importance"`
	DynamicType  string `json:"dynamicType"`
	InstName     string `json:"instName"`
	Manufacturer string `json:"manufacturer"`
	Model        string `json:"model"`
	ToolType     string `json:"toolType"`
}

func (req listRequest) common() usecase.ListRequest {
	return usecase.ListRequest{
		Page:  usecase.Page{No: req.PageNo, Size: req.PageSize},
		Title: req.Title,
		Year:  req.Year,
		Month: req.Month,
	}
}

func decodeListRequest(w http.ResponseWriter, r *http.Request) (listRequest, bool) {
	var req listRequest
	if r.Body == nil || r.ContentLength == 0 {
		return req, true
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiresponse.Write(w, apiresponse.ValidationError("request body must be valid JSON"))
		return req, false
	}
	return req, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id < 1 {
		apiresponse.Write(w, apiresponse.ValidationError("id must be a positive integer"))
		return 0, false
	}
	return id, true
}

func (h *Handler) respond(w http.ResponseWriter, data any, err error) {
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			apiresponse.Write(w, apiresponse.NotFound("record not found"))
			return
		}
		h.logger.Error("content request failed", zap.Error(err))
		apiresponse.Write(w, apiresponse.ServerError(""))
		return
	}
	apiresponse.Write(w, apiresponse.Success(data, "success"))
}

// ResearchOverview handles GET /eduPortal/research/achievements.
func (h *Handler) ResearchOverview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.research.Overview(r.Context())
	h.respond(w, overview, err)
}

func (h *Handler) PapersList(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeListRequest(w, r)
	if !ok {
		return
	}
	result, err := h.research.Papers(r.Context(), req.common())
	h.respond(w, result, err)
}

func (h *Handler) PaperDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	paper, err := h.research.PaperDetail(r.Context(), id)
	h.respond(w, paper, err)
}

func (h *Handler) PatentsList(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeListRequest(w, r)
	if !ok {
		return
	}
	result, err := h.research.Patents(r.Context(), req.common())
	h.respond(w, result, err)
}

func (h *Handler) PatentDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	patent, err := h.research.PatentDetail(r.Context(), id)
	h.respond(w, patent, err)
}

func (h *Handler) BooksList(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeListRequest(w, r)
	if !ok {
		return
	}
	result, err := h.research.Books(r.Context(), req.common())
	h.respond(w, result, err)
}

func (h *Handler) BookDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	book, err := h.research.BookDetail(r.Context(), id)
	h.respond(w, book, err)
}

func (h *Handler) NoticesList(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeListRequest(w, r)
	if !ok {
		return
	}
	result, err := h.notices.List(r.Context(), usecase.NoticeListRequest{
		ListRequest: req.common(),
		NoticeType:  req.NoticeType,
		Importance:  req.Importance,
	})
	h.respond(w, result, err)
}

func (h *Handler) NoticeDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	notice, err := h.notices.Detail(r.Context(), id)
	h.respond(w, notice, err)
}

func (h *Handler) DynamicsList(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeListRequest(w, r)
	if !ok {
		return
	}
	result, err := h.dynamics.List(r.Context(), usecase.DynamicListRequest{
		ListRequest: req.common(),
		DynamicType: req.DynamicType,
	})
	h.respond(w, result, err)
}

func (h *Handler) DynamicDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	dynamic, err := h.dynamics.Detail(r.Context(), id)
	h.respond(w, dynamic, err)
}

func (h *Handler) InstrumentsList(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeListRequest(w, r)
	if !ok {
		return
	}
	result, err := h.instruments.List(r.Context(), usecase.InstrumentListRequest{
		Page:         usecase.Page{No: req.PageNo, Size: req.PageSize},
		InstName:     req.InstName,
		Manufacturer: req.Manufacturer,
		Model:        req.Model,
	})
	h.respond(w, result, err)
}

func (h *Handler) InstrumentDetail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	instrument, err := h.instruments.Detail(r.Context(), id)
	h.respond(w, instrument, err)
}

// Recruitment handles GET /eduPortal/recruitment, the grouped listing.
func (h *Handler) Recruitment(w http.ResponseWriter, r *http.Request) {
	groups, err := h.recruit.GroupedByType(r.Context())
	h.respond(w, groups, err)
}

func (h *Handler) RecruitmentByType(w http.ResponseWriter, r *http.Request) {
	recruitmentType := chi.URLParam(r, "type")
	items, err := h.recruit.ByType(r.Context(), recruitmentType)
	h.respond(w, items, err)
}

func (h *Handler) ToolsList(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeListRequest(w, r)
	if !ok {
		return
	}
	result, err := h.tools.List(r.Context(), usecase.ToolListRequest{
		ListRequest: req.common(),
		ToolType:    req.ToolType,
	})
	h.respond(w, result, err)
}

func (h *Handler) DictTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.dict.Types(r.Context())
	h.respond(w, types, err)
}

func (h *Handler) DictByType(w http.ResponseWriter, r *http.Request) {
	dictType := chi.URLParam(r, "dictType")
	entries, err := h.dict.ByType(r.Context(), dictType)
	h.respond(w, entries, err)
}

func (h *Handler) UserList(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	h.respond(w, users, err)
}

func (h *Handler) UserDetail(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		apiresponse.Write(w, apiresponse.ValidationError("userId must not be empty"))
		return
	}
	user, err := h.users.Detail(r.Context(), userID)
	h.respond(w, user, err)
}

func (h *Handler) InstituteProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.Institute(r.Context())
	h.respond(w, profile, err)
}

func (h *Handler) LabEnvironmentProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profiles.LabEnvironment(r.Context())
	h.respond(w, profile, err)
}

// ProfileByType handles POST /eduPortal/profile with {"profileType": "..."}.
func (h *Handler) ProfileByType(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProfileType string `json:"profileType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProfileType == "" {
		apiresponse.Write(w, apiresponse.ValidationError("profileType must not be empty"))
		return
	}
	profile, err := h.profiles.ByType(r.Context(), req.ProfileType)
	h.respond(w, profile, err)
}
