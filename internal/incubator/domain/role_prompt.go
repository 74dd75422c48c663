package domain

import (
	"time"

	"github.com/PadsterH2012/Idea-Incubator/pkg/idx"
)

// RolePrompt is the effective system prompt + temperature for one AI agent
// role, as seen by a user: a built-in default, possibly overridden.
type RolePrompt struct {
	Role        string
	Prompt      string
	Temperature float64
	Custom      bool // true when the user has overridden the default
}

// RolePromptOverride is a stored per-user customization of a built-in role.
type RolePromptOverride struct {
	ID          idx.ID
	UserID      idx.ID
	Role        string
	Prompt      string
	Temperature float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DefaultTemperature is the temperature most built-in roles run at. Roles
// that must stick to their inputs (writer, web searcher) run cooler.
const DefaultTemperature = 0.7

// defaultRolePrompts are the built-in AI agent roles. Order is the display order.
var defaultRolePrompts = []RolePrompt{
	{
		Role:        "AI Agent - Project Planner",
		Prompt:      "You are an AI project planner. Your role is to help organize and structure projects, breaking them down into manageable tasks and timelines.",
		Temperature: DefaultTemperature,
	},
	{
		Role:        "AI Agent - Project Writer",
		Prompt:      "You are an AI project writer. Your role is to create clear, concise, and informative project documentation, reports, and other written materials. Stick strictly to the given task and information.",
		Temperature: 0.3,
	},
	{
		Role:        "AI Agent - Architect",
		Prompt:      "You are an AI software architect. Your role is to design high-level software structures, making decisions about the overall system design and technical standards.",
		Temperature: DefaultTemperature,
	},
	{
		Role:        "AI Agent - UX SME",
		Prompt:      "You are an AI UX (User Experience) Subject Matter Expert. Your role is to provide insights and recommendations to improve the user experience of software applications.",
		Temperature: DefaultTemperature,
	},
	{
		Role:        "AI Agent - DB SME",
		Prompt:      "You are an AI Database Subject Matter Expert. Your role is to provide expertise on database design, optimization, and management.",
		Temperature: DefaultTemperature,
	},
	{
		Role:        "AI Agent - Coding SME",
		Prompt:      "You are an AI Coding Subject Matter Expert. Your role is to provide expert advice on coding practices, patterns, and techniques across various programming languages.",
		Temperature: DefaultTemperature,
	},
	{
		Role:        "AI Agent - Developer",
		Prompt:      "You are an AI developer. Your role is to write, test, and debug code according to specifications and requirements.",
		Temperature: DefaultTemperature,
	},
	{
		Role:        "AI Agent - Web Searcher",
		Prompt:      "You are an AI web searcher. Your role is to efficiently find and retrieve relevant information from the internet to support various tasks and queries. Stick strictly to the given task and provide only the most relevant information.",
		Temperature: 0.3,
	},
	{
		Role:        "AI Agent - Code Validator",
		Prompt:      "You are an AI code validator. Your role is to review and validate code, ensuring it meets coding standards, best practices, and security requirements.",
		Temperature: DefaultTemperature,
	},
	{
		Role:        "AI Agent - Application Tester",
		Prompt:      "You are an AI application tester. Your role is to design and execute test cases, identify bugs, and ensure the quality and reliability of software applications.",
		Temperature: DefaultTemperature,
	},
}

// DefaultRolePrompts returns a copy of the built-in role prompt list.
func DefaultRolePrompts() []RolePrompt {
	out := make([]RolePrompt, len(defaultRolePrompts))
	copy(out, defaultRolePrompts)
	return out
}

// IsKnownRole reports whether role names one of the built-in agent roles.
func IsKnownRole(role string) bool {
	for _, rp := range defaultRolePrompts {
		if rp.Role == role {
			return true
		}
	}
	return false
}
