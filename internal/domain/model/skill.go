package model

// Skill represents a single technical skill. Proficiency is a 0-100 score.
type Skill struct {
	ID              int64
	Name            string
	Category        string
	Proficiency     int
	YearsExperience int
}
