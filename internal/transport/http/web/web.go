package web

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"staffdir/internal/domain/auth"
	"staffdir/internal/domain/contact"
	"staffdir/internal/domain/directory"
	contacthandler "staffdir/internal/transport/http/handlers/contact"
	"staffdir/internal/transport/http/middleware"
	"staffdir/internal/transport/http/shared"
)

//go:embed templates/*.html
var templateFS embed.FS

var (
	directoryTmpl = parsePage("templates/directory.html")
	contactTmpl   = parsePage("templates/contact.html")
)

const submitFailedMessage = "Failed to submit form. Please try again."

func parsePage(name string) *template.Template {
	return template.Must(template.New("layout.html").ParseFS(templateFS, "templates/layout.html", name))
}

type Handler struct {
	Directory *directory.Service
	Contact   contacthandler.Submitter
	Metrics   contacthandler.Metrics
	PageSize  int
	Brand     string
	// SubmitMiddleware wraps only the form submission route.
	SubmitMiddleware []func(http.Handler) http.Handler
}

func NewHandler(dir *directory.Service, submitter contacthandler.Submitter, metrics contacthandler.Metrics, pageSize int, brand string) *Handler {
	if pageSize < 1 {
		pageSize = directory.DefaultPageSize
	}
	return &Handler{Directory: dir, Contact: submitter, Metrics: metrics, PageSize: pageSize, Brand: brand}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.handleDirectory)
	r.Get("/contact", h.handleContactForm)
	r.With(h.SubmitMiddleware...).Post("/contact", h.handleContactSubmit)
}

type column struct {
	Label     string
	SortURL   string
	Indicator string
}

type filterOption struct {
	Value   string
	Checked bool
}

type filterGroup struct {
	Param   string
	Label   string
	Options []filterOption
}

type row struct {
	Employee  directory.Employee
	DetailURL string
}

type pageLink struct {
	Number  int
	URL     string
	Current bool
}

type directoryPage struct {
	Brand           string
	Viewer          auth.User
	Search          string
	SortField       string
	SortOrder       string
	Columns         []column
	Filters         []filterGroup
	ActiveFilters   int
	ClearFiltersURL string
	Rows            []row
	Shown           int
	Total           int
	Page            int
	TotalPages      int
	Pages           []pageLink
	FirstURL        string
	PrevURL         string
	NextURL         string
	LastURL         string
	ExportURL       string
	Detail          *directory.Detail
	CloseURL        string
}

var tableColumns = []struct {
	field directory.Field
	label string
}{
	{directory.FieldFullName, "Full Name"},
	{directory.FieldDepartment, "Department"},
	{directory.FieldPosition, "Position"},
	{directory.FieldReportingManager, "Reporting Manager"},
	{directory.FieldWorkArrangement, "Work Arrangement"},
	{directory.FieldEmploymentStatus, "Employment Status"},
	{directory.FieldEmail, "Email"},
	{directory.FieldPhoneNumber, "Phone Number"},
	{directory.FieldStartDate, "Start Date"},
}

var filterLabels = map[directory.Field]string{
	directory.FieldDepartment:       "Department",
	directory.FieldPosition:         "Position",
	directory.FieldReportingManager: "Manager",
	directory.FieldWorkArrangement:  "Work Arrangement",
	directory.FieldEmploymentStatus: "Employment Status",
}

func (h *Handler) handleDirectory(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUser(r.Context())
	if !ok {
		http.Error(w, "authentication required", http.StatusUnauthorized)
		return
	}

	view, err := h.Directory.NewView(r.Context(), user, h.PageSize)
	if err != nil {
		h.serverError(w, r, "open directory view failed", err)
		return
	}
	query := r.URL.Query()
	view.Restore(shared.ParseViewState(query, nil))
	if selected := strings.TrimSpace(query.Get("selected")); selected != "" {
		view.ClickRow(selected)
	}

	h.render(w, r, directoryTmpl, http.StatusOK, buildDirectoryPage(view, h.Brand))
}

func buildDirectoryPage(view *directory.View, brand string) directoryPage {
	state := view.State()
	result := view.Rows()
	options := view.Options()

	page := directoryPage{
		Brand:           brand,
		Viewer:          view.Viewer(),
		Search:          state.Search,
		ActiveFilters:   state.ActiveFilterCount(),
		ClearFiltersURL: pageURL("/", state.ClearFilters()),
		Shown:           len(result.Rows),
		Total:           result.Total,
		Page:            result.Page,
		TotalPages:      result.TotalPages,
		ExportURL:       pageURL("/api/v1/employees/export.pdf", state.WithPage(1)),
		CloseURL:        pageURL("/", state),
	}
	if state.Sort.Active() {
		page.SortField = string(state.Sort.Field)
		page.SortOrder = state.Sort.Order.String()
	}

	for _, col := range tableColumns {
		c := column{Label: col.label, SortURL: pageURL("/", state.CycleSort(col.field))}
		if state.Sort.Active() && state.Sort.Field == col.field {
			c.Indicator = "▲"
			if state.Sort.Order == directory.SortDesc {
				c.Indicator = "▼"
			}
		}
		page.Columns = append(page.Columns, c)
	}

	for _, field := range directory.FilterFields {
		selected, _ := state.Filters.Get(field)
		group := filterGroup{Param: shared.FilterParams[field], Label: filterLabels[field]}
		for _, value := range options.Get(field) {
			group.Options = append(group.Options, filterOption{Value: value, Checked: selected.Has(value)})
		}
		page.Filters = append(page.Filters, group)
	}

	clickable := view.RowsClickable()
	for _, emp := range result.Rows {
		rw := row{Employee: emp}
		if clickable {
			values := shared.EncodeViewState(state)
			values.Set("selected", emp.ID)
			rw.DetailURL = "/?" + values.Encode()
		}
		page.Rows = append(page.Rows, rw)
	}

	if result.TotalPages > 1 {
		for _, n := range pageWindow(result.Page, result.TotalPages) {
			page.Pages = append(page.Pages, pageLink{Number: n, URL: pageURL("/", state.WithPage(n)), Current: n == result.Page})
		}
		if result.Page > 1 {
			page.FirstURL = pageURL("/", state.WithPage(1))
			page.PrevURL = pageURL("/", state.WithPage(result.Page-1))
		}
		if result.Page < result.TotalPages {
			page.NextURL = pageURL("/", state.WithPage(result.Page+1))
			page.LastURL = pageURL("/", state.WithPage(result.TotalPages))
		}
	}

	if emp, open := view.Selected(); open {
		detail := directory.NewDetail(emp)
		page.Detail = &detail
	}
	return page
}

// pageWindow returns at most four page numbers around current.
func pageWindow(current, total int) []int {
	const size = 4
	var start int
	switch {
	case total <= size, current <= 2:
		start = 1
	case current >= total-1:
		start = total - size + 1
	default:
		start = current - 1
	}
	var out []int
	for n := start; n <= total && len(out) < size; n++ {
		out = append(out, n)
	}
	return out
}

func pageURL(path string, state directory.ViewState) string {
	values := shared.EncodeViewState(state)
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

type contactPage struct {
	Brand     string
	Form      contact.Submission
	Error     string
	Submitted bool
}

func (h *Handler) handleContactForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, contactTmpl, http.StatusOK, contactPage{Brand: h.Brand})
}

func (h *Handler) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.render(w, r, contactTmpl, http.StatusBadRequest, contactPage{Brand: h.Brand, Error: submitFailedMessage})
		return
	}
	in := submissionFromForm(r.PostForm)

	err := h.Contact.Submit(r.Context(), in)
	contacthandler.Outcome(r.Context(), h.Metrics, err)
	if err == nil {
		h.render(w, r, contactTmpl, http.StatusOK, contactPage{Brand: h.Brand, Submitted: true})
		return
	}

	page := contactPage{Brand: h.Brand, Form: in, Error: submitFailedMessage}
	status := http.StatusInternalServerError
	var verr *contact.ValidationError
	if errors.As(err, &verr) {
		page.Error = verr.Message()
		status = http.StatusBadRequest
	}
	h.render(w, r, contactTmpl, status, page)
}

func submissionFromForm(form url.Values) contact.Submission {
	return contact.Submission{
		CompanyName: form.Get("companyName"),
		Name:        form.Get("name"),
		PhoneNumber: form.Get("phoneNumber"),
		Email:       form.Get("email"),
	}
}

// render buffers the page so a template failure can still produce a clean 500.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, tmpl *template.Template, status int, data any) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		h.serverError(w, r, "render page failed", err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (h *Handler) serverError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	slog.Error(msg, "err", err, "requestId", middleware.GetRequestID(r.Context()))
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
