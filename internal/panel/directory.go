package panel

import (
	"context"
	"sort"
	"strings"

	"medclinic-client/internal/i18n"
	"medclinic-client/internal/models"
)

// PageSize is the number of doctors per admin list page.
const PageSize = 10

// DirectoryAPI lists every doctor account.
type DirectoryAPI interface {
	Doctors(ctx context.Context) ([]models.User, error)
}

// Directory is the admin's paginated doctor list.
type Directory struct {
	deps Deps
	api  DirectoryAPI

	doctors []models.User
	search  string
	desc    bool
	page    int
}

// NewDirectory creates the admin doctor list on page 1.
func NewDirectory(deps Deps, a DirectoryAPI) *Directory {
	return &Directory{deps: deps.withDefaults(), api: a, page: 1}
}

// Load fetches all doctors.
func (d *Directory) Load(ctx context.Context) error {
	doctors, err := d.api.Doctors(ctx)
	if err != nil {
		d.deps.fail(err, i18n.FetchDoctorsError, "fetch doctors")
		return err
	}
	d.doctors = doctors
	if d.page > d.TotalPages() {
		d.page = max(1, d.TotalPages())
	}
	return nil
}

// SetSearch filters by e-mail and returns to page 1.
func (d *Directory) SetSearch(term string) {
	d.search = term
	d.page = 1
}

// ToggleSort flips between ascending and descending e-mail order.
func (d *Directory) ToggleSort() { d.desc = !d.desc }

// SetDescending sets the e-mail order.
func (d *Directory) SetDescending(desc bool) { d.desc = desc }

// Descending reports the current order.
func (d *Directory) Descending() bool { return d.desc }

// Filtered returns the doctors matching the search, sorted by e-mail.
func (d *Directory) Filtered() []models.User {
	term := strings.ToLower(strings.TrimSpace(d.search))
	list := make([]models.User, 0, len(d.doctors))
	for _, doc := range d.doctors {
		if term == "" || strings.Contains(strings.ToLower(doc.Email), term) {
			list = append(list, doc)
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		a, b := strings.ToLower(list[i].Email), strings.ToLower(list[j].Email)
		if d.desc {
			return a > b
		}
		return a < b
	})
	return list
}

// TotalPages is the number of pages of the filtered list.
func (d *Directory) TotalPages() int {
	n := len(d.Filtered())
	return (n + PageSize - 1) / PageSize
}

// Page is the current page, starting at 1.
func (d *Directory) Page() int { return d.page }

// Visible returns the doctors on the current page.
func (d *Directory) Visible() []models.User {
	list := d.Filtered()
	start := (d.page - 1) * PageSize
	if start >= len(list) {
		return nil
	}
	end := min(start+PageSize, len(list))
	return list[start:end]
}

// NextPage advances unless on the last page.
func (d *Directory) NextPage() bool {
	if d.page < d.TotalPages() {
		d.page++
		return true
	}
	return false
}

// PrevPage goes back unless on the first page.
func (d *Directory) PrevPage() bool {
	if d.page > 1 {
		d.page--
		return true
	}
	return false
}

// Open navigates to a doctor's detail screen.
func (d *Directory) Open(id string) { d.deps.Nav.Navigate(AdminDoctorRoute(id)) }

// Edit navigates to a doctor's edit form.
func (d *Directory) Edit(id string) { d.deps.Nav.Navigate(AdminEditDoctorRoute(id)) }

// Create navigates to the new doctor form.
func (d *Directory) Create() { d.deps.Nav.Navigate(RouteAdminNewDoctor) }
