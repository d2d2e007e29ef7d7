package data

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Service categories used by case studies, testimonials and service pages.
const (
	ServiceBusiness      = "business"
	ServiceIndividuals   = "individuals"
	ServiceEntertainment = "entertainment"
)

// Page represents one marketing-site page whose hero section is editable
// from the portal. Pages are seeded once and never deleted here.
type Page struct {
	ID              string    `db:"id" json:"id"`
	Slug            string    `db:"slug" json:"slug"`
	Title           string    `db:"title" json:"title"`
	MetaTitle       string    `db:"meta_title" json:"meta_title"`
	MetaDescription string    `db:"meta_description" json:"meta_description"`
	HeroTitle       string    `db:"hero_title" json:"hero_title"`
	HeroDescription string    `db:"hero_description" json:"hero_description"`
	HeroCTAText     string    `db:"hero_cta_text" json:"hero_cta_text"`
	HeroCTALink     string    `db:"hero_cta_link" json:"hero_cta_link"`
	IsPublished     bool      `db:"is_published" json:"is_published"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}

// CaseStudy represents a portfolio entry.
type CaseStudy struct {
	ID                string         `db:"id" json:"id"`
	Title             string         `db:"title" json:"title"`
	Slug              string         `db:"slug" json:"slug"`
	Sector            string         `db:"sector" json:"sector"`
	Status            string         `db:"status" json:"status"`
	HeadlineSummary   string         `db:"headline_summary" json:"headline_summary"`
	Excerpt           string         `db:"excerpt" json:"excerpt"`
	Background        string         `db:"background" json:"background"`
	StrategicApproach string         `db:"strategic_approach" json:"strategic_approach"`
	Impact            string         `db:"impact" json:"impact"`
	FeaturedImageURL  string         `db:"featured_image_url" json:"featured_image_url"`
	Tags              pq.StringArray `db:"tags" json:"tags"`
	ServiceType       string         `db:"service_type" json:"service_type"`
	IsFeatured        bool           `db:"is_featured" json:"is_featured"`
	IsPublished       bool           `db:"is_published" json:"is_published"`
	CreatedAt         time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time      `db:"updated_at" json:"updated_at"`
}

// RecordID reports the backend-assigned identifier; empty until inserted.
func (c *CaseStudy) RecordID() string { return c.ID }

// Insight content formats.
const (
	FormatArticle = "article"
	FormatVideo   = "video"
)

// Insight represents an article or video published under the agency's
// editorial banner. At most one insight is featured at any time.
type Insight struct {
	ID               string     `db:"id" json:"id"`
	Title            string     `db:"title" json:"title"`
	Slug             string     `db:"slug" json:"slug"`
	Category         string     `db:"category" json:"category"`
	Excerpt          string     `db:"excerpt" json:"excerpt"`
	ContentBody      string     `db:"content_body" json:"content_body"`
	FeaturedImageURL string     `db:"featured_image_url" json:"featured_image_url"`
	AuthorName       string     `db:"author_name" json:"author_name"`
	ContentFormat    string     `db:"content_format" json:"content_format"`
	MetaTitle        string     `db:"meta_title" json:"meta_title"`
	MetaDescription  string     `db:"meta_description" json:"meta_description"`
	IsFeatured       bool       `db:"is_featured" json:"is_featured"`
	IsPublished      bool       `db:"is_published" json:"is_published"`
	PublishedAt      *time.Time `db:"published_at" json:"published_at"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// RecordID reports the backend-assigned identifier; empty until inserted.
func (i *Insight) RecordID() string { return i.ID }

// Lead statuses.
var LeadStatuses = []string{"new", "contacted", "converted", "archived"}

// Lead represents an inbound enquiry captured by the public contact form.
// The portal reads, re-statuses and deletes leads; it never creates them.
type Lead struct {
	ID              string    `db:"id" json:"id"`
	FullName        string    `db:"full_name" json:"full_name"`
	Email           string    `db:"email" json:"email"`
	PhoneNumber     string    `db:"phone_number" json:"phone_number"`
	Company         string    `db:"company" json:"company"`
	Title           string    `db:"title" json:"title"`
	PageSource      string    `db:"page_source" json:"page_source"`
	ServiceInterest string    `db:"service_interest" json:"service_interest"`
	Message         string    `db:"message" json:"message"`
	Status          string    `db:"status" json:"status"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// Testimonial represents client feedback. Customer identity fields may be
// blank when the anonymous flag is set.
type Testimonial struct {
	ID           string    `db:"id" json:"id"`
	Feedback     string    `db:"feedback" json:"feedback"`
	ServiceType  string    `db:"service_type" json:"service_type"`
	CustomerName string    `db:"customer_name" json:"customer_name"`
	Company      string    `db:"company" json:"company"`
	Designation  string    `db:"designation" json:"designation"`
	IsAnonymous  bool      `db:"is_anonymous" json:"is_anonymous"`
	IsFeatured   bool      `db:"is_featured" json:"is_featured"`
	IsApproved   bool      `db:"is_approved" json:"is_approved"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// RecordID reports the backend-assigned identifier; empty until inserted.
func (t *Testimonial) RecordID() string { return t.ID }

// JobOpening represents a vacancy on the careers page. The active flag
// controls public visibility.
type JobOpening struct {
	ID               string    `db:"id" json:"id"`
	RoleTitle        string    `db:"role_title" json:"role_title"`
	BusinessDivision string    `db:"business_division" json:"business_division"`
	Team             string    `db:"team" json:"team"`
	WorkType         string    `db:"work_type" json:"work_type"`
	Location         string    `db:"location" json:"location"`
	Description      string    `db:"description" json:"description"`
	Excerpt          string    `db:"excerpt" json:"excerpt"`
	IsActive         bool      `db:"is_active" json:"is_active"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time `db:"updated_at" json:"updated_at"`
}

// RecordID reports the backend-assigned identifier; empty until inserted.
func (j *JobOpening) RecordID() string { return j.ID }

// Applicant statuses.
var ApplicantStatuses = []string{"new", "reviewed", "interviewing", "hired", "rejected"}

// AnswerList is an ordered sequence of screening question/answer pairs,
// stored as a JSONB column.
type AnswerList []Answer

// Answer is one screening question and the applicant's response.
type Answer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Value implements driver.Valuer so AnswerList persists as JSONB.
func (a AnswerList) Value() (driver.Value, error) {
	if a == nil {
		a = AnswerList{}
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for reading the JSONB column.
func (a *AnswerList) Scan(src interface{}) error {
	if src == nil {
		*a = AnswerList{}
		return nil
	}
	b, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("cannot scan %T into AnswerList", src)
	}
	return json.Unmarshal(b, a)
}

// Applicant represents a submission against a job opening. Applications are
// created by the public careers form; the portal only re-statuses and
// deletes them. The job reference is weak: deleting the opening leaves the
// applicant with an empty role title.
type Applicant struct {
	ID           string     `db:"id" json:"id"`
	JobID        *string    `db:"job_id" json:"job_id"`
	RoleTitle    string     `db:"role_title" json:"role_title"`
	FullName     string     `db:"full_name" json:"full_name"`
	Email        string     `db:"email" json:"email"`
	PhoneNumber  string     `db:"phone_number" json:"phone_number"`
	ResumeURL    string     `db:"resume_url" json:"resume_url"`
	PortfolioURL string     `db:"portfolio_url" json:"portfolio_url"`
	LinkedInURL  string     `db:"linkedin_url" json:"linkedin_url"`
	Answers      AnswerList `db:"answers" json:"answers"`
	Status       string     `db:"status" json:"status"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
}
