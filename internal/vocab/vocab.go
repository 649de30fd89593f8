// Package vocab defines the canonical skill vocabulary shared by the CV
// parser and the job posting analyzer. Membership is fixed: only terms
// listed here (plus the abbreviation expansions) can ever appear in an
// extracted skill set.
package vocab

import "sort"

// technicalSkills is the canonical vocabulary. All entries are lowercase.
var technicalSkills = map[string]bool{
	// Languages
	"python": true, "java": true, "javascript": true, "typescript": true,
	"c++": true, "c#": true, "ruby": true, "go": true, "php": true,
	"swift": true, "kotlin": true, "scala": true, "rust": true, "r": true,
	"matlab": true,
	// Web
	"html": true, "css": true, "react": true, "angular": true, "vue": true,
	"node.js": true, "nodejs": true, "django": true, "flask": true,
	"fastapi": true, "express": true, "spring boot": true, "asp.net": true,
	"next.js": true, "svelte": true, "jquery": true, "bootstrap": true,
	"tailwind": true,
	// Data stores
	"sql": true, "mysql": true, "postgresql": true, "mongodb": true,
	"redis": true, "oracle": true, "nosql": true, "dynamodb": true,
	"cassandra": true, "elasticsearch": true, "sqlite": true,
	// Cloud / infra
	"aws": true, "azure": true, "gcp": true, "google cloud": true,
	"docker": true, "kubernetes": true, "k8s": true, "terraform": true,
	"ansible": true, "jenkins": true, "gitlab": true, "github actions": true,
	"ci/cd": true,
	// ML / data science
	"machine learning": true, "deep learning": true, "data science": true,
	"artificial intelligence": true, "tensorflow": true, "pytorch": true,
	"keras": true, "scikit-learn": true, "pandas": true, "numpy": true,
	"matplotlib": true, "nlp": true, "computer vision": true, "opencv": true,
	// Big data
	"spark": true, "hadoop": true, "kafka": true, "airflow": true,
	"databricks": true,
	// Practices / tooling
	"git": true, "jira": true, "agile": true, "scrum": true, "devops": true,
	"rest api": true, "graphql": true, "microservices": true, "linux": true,
	"bash": true, "api": true, "etl": true, "tableau": true, "power bi": true,
	"excel": true,
}

// Abbreviation maps a standalone shorthand token to the canonical skill it
// implies. Expansions are additive: they never remove the literal hit.
type Abbreviation struct {
	Token string
	Imply string
}

// Abbreviations lists the fixed shorthand expansions applied after the
// vocabulary scan.
var Abbreviations = []Abbreviation{
	{Token: "ml", Imply: "machine learning"},
	{Token: "ai", Imply: "artificial intelligence"},
	{Token: "js", Imply: "javascript"},
}

// Contains reports whether term is part of the canonical vocabulary.
func Contains(term string) bool {
	return technicalSkills[term]
}

// Terms returns the vocabulary sorted lexicographically. The slice is a
// fresh copy; callers may mutate it.
func Terms() []string {
	terms := make([]string, 0, len(technicalSkills))
	for term := range technicalSkills {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
