// Package taxonomy defines the content hierarchy the engine estimates
// ability over: two test sections, each split into content domains,
// each split into skills. The taxonomy is seeded at init and read-only
// afterwards.
package taxonomy

import "fmt"

// Section is a top-level test section.
type Section string

const (
	SectionMath    Section = "math"
	SectionReading Section = "reading-writing"
)

// AllSections returns the sections in display order.
func AllSections() []Section {
	return []Section{SectionMath, SectionReading}
}

// SectionDisplayName returns a human-readable name for a section.
func SectionDisplayName(s Section) string {
	switch s {
	case SectionMath:
		return "Math"
	case SectionReading:
		return "Reading & Writing"
	default:
		return string(s)
	}
}

// Domain is a content domain within a section.
type Domain struct {
	ID      string
	Name    string
	Section Section
}

// Skill is a single teachable skill within a domain.
type Skill struct {
	ID          string
	Name        string
	DomainID    string
	Description string
}

// registry holds the seeded taxonomy with precomputed indices.
type registry struct {
	domains    []Domain
	skills     []Skill
	domainByID map[string]*Domain
	skillByID  map[string]*Skill
	bySection  map[Section][]Domain
	byDomain   map[string][]Skill
}

var reg *registry

func init() {
	reg = buildRegistry(seedDomains, seedSkills)
}

func buildRegistry(domains []Domain, skills []Skill) *registry {
	r := &registry{
		domains:    domains,
		skills:     skills,
		domainByID: make(map[string]*Domain, len(domains)),
		skillByID:  make(map[string]*Skill, len(skills)),
		bySection:  make(map[Section][]Domain),
		byDomain:   make(map[string][]Skill),
	}
	for i := range r.domains {
		d := &r.domains[i]
		r.domainByID[d.ID] = d
		r.bySection[d.Section] = append(r.bySection[d.Section], *d)
	}
	for i := range r.skills {
		s := &r.skills[i]
		r.skillByID[s.ID] = s
		r.byDomain[s.DomainID] = append(r.byDomain[s.DomainID], *s)
	}
	return r
}

// GetSkill returns a skill by ID, or an error if not found.
func GetSkill(id string) (Skill, error) {
	s, ok := reg.skillByID[id]
	if !ok {
		return Skill{}, fmt.Errorf("skill not found: %q", id)
	}
	return *s, nil
}

// GetDomain returns a domain by ID, or an error if not found.
func GetDomain(id string) (Domain, error) {
	d, ok := reg.domainByID[id]
	if !ok {
		return Domain{}, fmt.Errorf("domain not found: %q", id)
	}
	return *d, nil
}

// AllDomains returns every domain, section order first.
func AllDomains() []Domain {
	var result []Domain
	for _, sec := range AllSections() {
		result = append(result, reg.bySection[sec]...)
	}
	return result
}

// DomainsBySection returns the domains of a section in seed order.
func DomainsBySection(s Section) []Domain {
	domains := reg.bySection[s]
	result := make([]Domain, len(domains))
	copy(result, domains)
	return result
}

// SkillsByDomain returns the skills of a domain in seed order.
func SkillsByDomain(domainID string) []Skill {
	skills := reg.byDomain[domainID]
	result := make([]Skill, len(skills))
	copy(result, skills)
	return result
}

// AllSkills returns every skill in the taxonomy.
func AllSkills() []Skill {
	result := make([]Skill, len(reg.skills))
	copy(result, reg.skills)
	return result
}

// SectionOf returns the section a domain belongs to.
func SectionOf(domainID string) (Section, error) {
	d, err := GetDomain(domainID)
	if err != nil {
		return "", err
	}
	return d.Section, nil
}

// DomainOf returns the domain a skill belongs to.
func DomainOf(skillID string) (Domain, error) {
	s, err := GetSkill(skillID)
	if err != nil {
		return Domain{}, err
	}
	return GetDomain(s.DomainID)
}
