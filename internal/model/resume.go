package model

// Go models for the resume payload persisted as the `data` JSON blob of a
// resume record. Field names match the resume.schema.json used for
// validation and rendering.

type PersonalInfo struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website,omitempty"`
	LinkedIn string `json:"linkedin,omitempty"`
	GitHub   string `json:"github,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

type Education struct {
	ID           string   `json:"id"`
	Institution  string   `json:"institution"`
	Degree       string   `json:"degree"`
	FieldOfStudy string   `json:"fieldOfStudy"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	GPA          string   `json:"gpa,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
	Description  string   `json:"description,omitempty"`
}

type Experience struct {
	ID           string   `json:"id"`
	JobTitle     string   `json:"jobTitle"`
	Company      string   `json:"company"`
	Location     string   `json:"location,omitempty"`
	StartDate    string   `json:"startDate"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
	Description  string   `json:"description,omitempty"`
	Achievements []string `json:"achievements,omitempty"`
}

// SkillLevel is the canonical proficiency scale. Legacy records carry a
// numeric 1-5 level instead; see NormalizeResumeData.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
	LevelExpert       SkillLevel = "Expert"
)

type SkillItem struct {
	Name  string     `json:"name"`
	Level SkillLevel `json:"level,omitempty"`
}

type SkillGroup struct {
	ID       string      `json:"id"`
	Category string      `json:"category"`
	Items    []SkillItem `json:"items"`
}

type Achievement struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Organization string `json:"organization,omitempty"`
	Date         string `json:"date,omitempty"`
	Description  string `json:"description,omitempty"`
}

type CustomSectionItem struct {
	Title       string `json:"title,omitempty"`
	Subtitle    string `json:"subtitle,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

type CustomSection struct {
	ID    string              `json:"id"`
	Title string              `json:"title"`
	Items []CustomSectionItem `json:"items"`
}

type ResumeTheme struct {
	FontFamily   string `json:"fontFamily"`
	PrimaryColor string `json:"primaryColor"`
	HeadingSize  string `json:"headingSize"`
	Template     string `json:"template"`
}

type ResumeData struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []SkillGroup    `json:"skills"`
	Achievements   []Achievement   `json:"achievements"`
	CustomSections []CustomSection `json:"customSections"`
	Theme          ResumeTheme     `json:"theme"`
}

// DefaultTheme is applied to new resumes and to decoded records that are
// missing theme fields.
func DefaultTheme() ResumeTheme {
	return ResumeTheme{
		FontFamily:   "inter",
		PrimaryColor: "#2563eb",
		HeadingSize:  "md",
		Template:     "modern",
	}
}

// NewResumeData returns an empty but renderable resume: all collections
// length zero, default theme.
func NewResumeData() *ResumeData {
	return &ResumeData{
		Education:      []Education{},
		Experience:     []Experience{},
		Skills:         []SkillGroup{},
		Achievements:   []Achievement{},
		CustomSections: []CustomSection{},
		Theme:          DefaultTheme(),
	}
}
