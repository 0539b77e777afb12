package catalog

import (
	"time"
)

type Publisher struct {
	ID               int64         `json:"id"`
	Name             string        `json:"name"`
	Description      *string       `json:"description,omitempty"`
	Website          *string       `json:"website,omitempty"`
	Contact          Contact       `json:"contact"`
	Branding         Branding      `json:"branding"`
	Social           SocialLinks   `json:"social"`
	MissionStatement *string       `json:"mission_statement,omitempty"`
	Specialties      []string      `json:"specialties"`
	Awards           []string      `json:"awards"`
	NotableAuthors   []string      `json:"notable_authors"`
	FoundedYear      *int          `json:"founded_year,omitempty"`
	BusinessHours    BusinessHours `json:"business_hours"`
	IsActive         bool          `json:"is_active"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

type Contact struct {
	Email      *string `json:"email,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	State      *string `json:"state,omitempty"`
	Country    *string `json:"country,omitempty"`
	PostalCode *string `json:"postal_code,omitempty"`
}

type Branding struct {
	LogoURL             *string `json:"logo_url,omitempty"`
	BannerURL           *string `json:"banner_url,omitempty"`
	BrandColorPrimary   *string `json:"brand_color_primary,omitempty"`
	BrandColorSecondary *string `json:"brand_color_secondary,omitempty"`
	Tagline             *string `json:"tagline,omitempty"`
}

type SocialLinks struct {
	Twitter   *string `json:"twitter,omitempty"`
	LinkedIn  *string `json:"linkedin,omitempty"`
	Instagram *string `json:"instagram,omitempty"`
	Facebook  *string `json:"facebook,omitempty"`
	YouTube   *string `json:"youtube,omitempty"`
}

// BusinessHours holds opening hours per weekday, e.g. "09:00-17:00".
// Stored as the JSONB column publishers.business_hours.
type BusinessHours struct {
	Monday    *string `json:"monday,omitempty"`
	Tuesday   *string `json:"tuesday,omitempty"`
	Wednesday *string `json:"wednesday,omitempty"`
	Thursday  *string `json:"thursday,omitempty"`
	Friday    *string `json:"friday,omitempty"`
	Saturday  *string `json:"saturday,omitempty"`
	Sunday    *string `json:"sunday,omitempty"`
}

type BranchType string

const (
	BranchHQ                 BranchType = "HQ"
	BranchOffice             BranchType = "Office"
	BranchWarehouse          BranchType = "Warehouse"
	BranchBookstore          BranchType = "Bookstore"
	BranchDistributionCenter BranchType = "Distribution Center"
	BranchRegionalOffice     BranchType = "Regional Office"
)

type Branch struct {
	ID           int64      `json:"id"`
	PublisherID  int64      `json:"publisher_id"`
	Name         string     `json:"name"`
	BranchType   BranchType `json:"branch_type"`
	Address      *string    `json:"address,omitempty"`
	City         *string    `json:"city,omitempty"`
	Country      *string    `json:"country,omitempty"`
	Phone        *string    `json:"phone,omitempty"`
	Email        *string    `json:"email,omitempty"`
	Latitude     *float64   `json:"latitude,omitempty"`
	Longitude    *float64   `json:"longitude,omitempty"`
	IsMainBranch bool       `json:"is_main_branch"`
	CreatedAt    time.Time  `json:"created_at"`
}
