package domain

// SectionID identifies one section of the brochure page
type SectionID string

// Page sections, in document order
const (
	SectionHero       SectionID = "hero"
	SectionAbout      SectionID = "about"
	SectionOperations SectionID = "operations"
	SectionGallery    SectionID = "gallery"
	SectionContact    SectionID = "contact"
)

// SectionOrder is the fixed top-to-bottom layout of the page
var SectionOrder = []SectionID{
	SectionHero,
	SectionAbout,
	SectionOperations,
	SectionGallery,
	SectionContact,
}

// Slide is one panel of the hero carousel
type Slide struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}

// Tab is one button/panel pair of the operations section
type Tab struct {
	Label string `toml:"label"`
	Body  string `toml:"body"`
}

// GalleryImage is one lazily loaded image cell
type GalleryImage struct {
	Path    string `toml:"path"`
	Caption string `toml:"caption"`
}

// NavLink is one entry of the navigation bar; Target names a section
type NavLink struct {
	Label  string    `toml:"label"`
	Target SectionID `toml:"target"`
}

// ModalCopy is the content of the booking dialog
type ModalCopy struct {
	Title string `toml:"title"`
	Body  string `toml:"body"`
}
