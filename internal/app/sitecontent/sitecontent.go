// Package sitecontent holds the editorial content of the marketing site:
// navigation, leadership bios, news items, and office locations. The
// content changes with marketing review cycles, not with code, so it
// lives in one place instead of being scattered through templates.
package sitecontent

// SiteName is the public brand name used in titles and headers.
const SiteName = "Harvale Foods"

// NavLink is one entry in the site-wide navigation bar.
type NavLink struct {
	Label string
	Href  string
}

// Navigation is the header menu, in display order.
var Navigation = []NavLink{
	{Label: "Home", Href: "/"},
	{Label: "About Us", Href: "/about"},
	{Label: "Sustainability", Href: "/sustainability"},
	{Label: "News", Href: "/news"},
	{Label: "Careers", Href: "/careers"},
	{Label: "Contact", Href: "/contact"},
}

// Leader is a member of the executive team shown on the about page.
type Leader struct {
	Name  string
	Title string
	Bio   string
}

// Leaders is the executive team, in display order.
var Leaders = []Leader{
	{
		Name:  "Margaret Hale",
		Title: "Chief Executive Officer",
		Bio:   "Margaret has led Harvale Foods since 2018, steering the company's expansion into frozen vegetables and plant-based lines.",
	},
	{
		Name:  "Daniel Otieno",
		Title: "Chief Operations Officer",
		Bio:   "Daniel oversees production across all Harvale facilities and the farm partnership program.",
	},
	{
		Name:  "Priya Raman",
		Title: "Chief Sustainability Officer",
		Bio:   "Priya directs the company's regenerative agriculture and water stewardship commitments.",
	},
}

// NewsItem is a press release or company announcement.
type NewsItem struct {
	Slug    string
	Title   string
	Date    string // YYYY-MM-DD
	Summary string
}

// News lists announcements newest-first.
var News = []NewsItem{
	{
		Slug:    "regenerative-agriculture-milestone",
		Title:   "Harvale Foods reaches 40% regenerative acreage milestone",
		Date:    "2026-05-12",
		Summary: "Two years ahead of schedule, 40% of partner farm acreage now follows regenerative practices.",
	},
	{
		Slug:    "new-processing-plant",
		Title:   "New processing plant opens in the Rift Valley",
		Date:    "2026-02-03",
		Summary: "The facility adds 300 jobs and doubles regional frozen vegetable capacity.",
	},
	{
		Slug:    "plant-based-line-launch",
		Title:   "Harvale launches plant-based appetizer line",
		Date:    "2025-11-20",
		Summary: "Six new products arrive in retail freezers across East Africa this quarter.",
	},
}

// Brand is a product line shown on the about page.
type Brand struct {
	Name        string
	Description string
}

// Brands lists the product lines, flagship first.
var Brands = []Brand{
	{Name: "Harvale Harvest", Description: "Frozen vegetables picked and frozen within hours, from green beans to butternut."},
	{Name: "Harvale Table", Description: "Ready-to-cook vegetable mixes and appetizers for weeknight kitchens."},
	{Name: "Verda by Harvale", Description: "The plant-based line: burgers, bites, and appetizers built on our own produce."},
}

// Pillar is a sustainability commitment with its own detail page.
type Pillar struct {
	Slug    string
	Title   string
	Summary string
	Body    string
}

// Pillars lists the sustainability commitments, in display order.
var Pillars = []Pillar{
	{
		Slug:    "regenerative-agriculture",
		Title:   "Regenerative agriculture",
		Summary: "Partner farms rebuild soil with cover cropping and reduced tillage.",
		Body:    "40% of partner acreage follows regenerative practices today, on the way to 60% by 2030. Field agronomists work with every partner farm on cover cropping, rotation planning, and reduced tillage, and the program pays a premium for verified regenerative acreage.",
	},
	{
		Slug:    "water-stewardship",
		Title:   "Water stewardship",
		Summary: "Every processing plant recycles its wash water.",
		Body:    "Closed-loop wash systems have cut fresh water use per tonne of product by a third since 2020. Drip irrigation grants help partner farms in water-stressed catchments make the same shift in the field.",
	},
	{
		Slug:    "zero-waste",
		Title:   "Zero waste to landfill",
		Summary: "Trim and culls become animal feed and compost.",
		Body:    "Two of our three plants already send nothing to landfill. Vegetable trim goes to local livestock feed, culls are composted back to partner farms, and packaging lines are moving to mono-material film that local recyclers accept.",
	},
}

// FindPillar returns the pillar with the given slug.
func FindPillar(slug string) (Pillar, bool) {
	for _, p := range Pillars {
		if p.Slug == slug {
			return p, true
		}
	}
	return Pillar{}, false
}

// Office is a company location shown on the contact page.
type Office struct {
	City    string
	Country string
	Address string
	Phone   string
}

// Offices lists company locations, headquarters first.
var Offices = []Office{
	{City: "Nairobi", Country: "Kenya", Address: "14 Riverside Grove, Nairobi", Phone: "+254 20 555 0140"},
	{City: "Nakuru", Country: "Kenya", Address: "Plot 7, Industrial Area, Nakuru", Phone: "+254 51 555 0188"},
	{City: "Kampala", Country: "Uganda", Address: "22 Lugogo Bypass, Kampala", Phone: "+256 41 555 0122"},
}
