package models

// DefaultStages is the stage sequence every new pipeline starts with
// unless configuration overrides it
var DefaultStages = []string{"Applied", "Screen", "Interview", "Offer", "Hired"}

// MaxStageTitleLength bounds the length of a pipeline column title
const MaxStageTitleLength = 50

// MaxJobTitleLength bounds the length of a job title
const MaxJobTitleLength = 200
