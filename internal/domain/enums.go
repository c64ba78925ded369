package domain

type Priority string

const (
	PriorityNonNegotiable Priority = "non_negotiable"
	PriorityHigh          Priority = "high"
	PriorityNormal        Priority = "normal"
)

type EnergyLevel string

const (
	EnergyHigh   EnergyLevel = "high"
	EnergyMedium EnergyLevel = "medium"
	EnergyLow    EnergyLevel = "low"
)

// LifeDomain is a life-balance category. It is carried for aggregation and
// display only and never feeds scheduling decisions.
type LifeDomain string

const (
	DomainAcademic     LifeDomain = "Academic"
	DomainSkill        LifeDomain = "Skill"
	DomainHealth       LifeDomain = "Health"
	DomainSpirituality LifeDomain = "Spirituality"
	DomainRoutine      LifeDomain = "Routine"
)

type BlockType string

const (
	BlockWork    BlockType = "work"
	BlockBreak   BlockType = "break"
	BlockFixed   BlockType = "fixed"
	BlockRoutine BlockType = "routine"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"non_negotiable": true, "high": true, "normal": true,
}

// ValidEnergyLevels is the canonical set of accepted energy level strings.
var ValidEnergyLevels = map[string]bool{
	"high": true, "medium": true, "low": true,
}

// ValidLifeDomains is the canonical set of accepted life domain strings.
var ValidLifeDomains = map[string]bool{
	"Academic": true, "Skill": true, "Health": true,
	"Spirituality": true, "Routine": true,
}

// ValidBlockTypes is the canonical set of accepted block type strings.
var ValidBlockTypes = map[string]bool{
	"work": true, "break": true, "fixed": true, "routine": true,
}
