package domain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/plushfoundry/mascotforge/internal/design"
	"github.com/plushfoundry/mascotforge/internal/services/design/storage"
)

// tracerName identifies spans emitted by MCP tool handlers.
const tracerName = "mascotforge/mcp"

// defaultHistoryLimit bounds list_design_history when no limit is given.
const defaultHistoryLimit = 20

// maxHistoryLimit caps list_design_history page sizes.
const maxHistoryLimit = 100

// GenerateDesignInput represents the MCP tool input for design generation.
type GenerateDesignInput struct {
	UserPrompt   string         `json:"user_prompt" jsonschema:"free-text description of the character to design"`
	DesignIntent *design.Intent `json:"design_intent,omitempty" jsonschema:"optional structured emotional intent"`
}

// GenerateDesignResult represents the MCP tool output for design generation.
type GenerateDesignResult struct {
	Specification design.Specification `json:"specification" jsonschema:"complete reproducible design specification"`
}

// ArchetypeRulesInput represents the MCP tool input for archetype rule lookup.
type ArchetypeRulesInput struct {
	EmotionalTone string `json:"emotional_tone" jsonschema:"archetype identifier, e.g. joyful_character_archetype"`
}

// ArchetypeRulesResult represents the MCP tool output for archetype rule lookup.
// Unknown archetypes populate Error and Available instead of failing the call.
type ArchetypeRulesResult struct {
	Archetype             string            `json:"archetype,omitempty" jsonschema:"resolved archetype identifier"`
	CoreIntention         string            `json:"core_intention,omitempty" jsonschema:"emotional goal of the archetype"`
	CompositionPrinciple  string            `json:"composition_principle,omitempty" jsonschema:"visual composition rule"`
	WhyThisWorks          string            `json:"why_this_works,omitempty" jsonschema:"design justification"`
	SensoryPrinciples     []string          `json:"sensory_principles,omitempty" jsonschema:"tactile and sensory guidance"`
	ProportionRules       map[string]string `json:"proportion_rules,omitempty" jsonschema:"named proportion constraints"`
	Keywords              []string          `json:"keywords,omitempty" jsonschema:"prompt keywords that select this archetype"`
	ForbiddenCombinations []string          `json:"forbidden_combinations,omitempty" jsonschema:"combinations the archetype excludes"`
	Examples              []string          `json:"examples,omitempty" jsonschema:"reference characters"`
	Error                 string            `json:"error,omitempty" jsonschema:"set when the archetype is unknown"`
	Available             []string          `json:"available,omitempty" jsonschema:"known archetype identifiers, in catalogue order"`
}

// DesignHistoryInput represents the MCP tool input for history listing.
type DesignHistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum records to return, newest first"`
}

// DesignHistoryRecord represents one stored design generation.
type DesignHistoryRecord struct {
	ID            int64  `json:"id" jsonschema:"record identifier"`
	Prompt        string `json:"prompt" jsonschema:"original user prompt"`
	CharacterName string `json:"character_name" jsonschema:"synthesized character name"`
	Archetype     string `json:"archetype" jsonschema:"resolved archetype identifier"`
	DesignSeed    int    `json:"design_seed" jsonschema:"deterministic seed derived from the prompt"`
	CreatedAt     string `json:"created_at" jsonschema:"record creation time, RFC 3339"`
}

// DesignHistoryResult represents the MCP tool output for history listing.
type DesignHistoryResult struct {
	Records        []DesignHistoryRecord `json:"records" jsonschema:"stored design records, newest first"`
	StorageEnabled bool                  `json:"storage_enabled" jsonschema:"whether a history store is configured"`
}

// GenerateDesignTool defines the MCP tool schema for design generation.
func GenerateDesignTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "generate_design",
		Description: "Generates a reproducible mascot design specification from a prompt",
	}
}

// ArchetypeRulesTool defines the MCP tool schema for archetype rule lookup.
func ArchetypeRulesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_archetype_rules",
		Description: "Returns the design rules for an emotional archetype",
	}
}

// DesignHistoryTool defines the MCP tool schema for history listing.
func DesignHistoryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_design_history",
		Description: "Lists recently generated design specifications",
	}
}

// GenerateDesignHandler resolves a prompt into a design specification and
// records it to the history store when one is configured.
func GenerateDesignHandler(svc *design.Service, store storage.DesignRecordStore) mcp.ToolHandlerFor[GenerateDesignInput, GenerateDesignResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input GenerateDesignInput) (*mcp.CallToolResult, GenerateDesignResult, error) {
		ctx, span := otel.Tracer(tracerName).Start(ctx, "generate_design")
		defer span.End()

		spec := svc.GenerateDesign(input.UserPrompt, input.DesignIntent)
		span.SetAttributes(
			attribute.String("design.archetype", spec.Archetype),
			attribute.Int("design.seed", spec.Seed),
		)

		if store != nil {
			payload, err := json.Marshal(spec)
			if err != nil {
				return nil, GenerateDesignResult{}, fmt.Errorf("encode specification: %w", err)
			}
			record := storage.DesignRecord{
				Prompt:        input.UserPrompt,
				CharacterName: spec.CharacterName,
				Archetype:     spec.Archetype,
				DesignSeed:    spec.Seed,
				Specification: string(payload),
				CreatedAt:     time.Now().UTC(),
			}
			if _, err := store.CreateDesignRecord(ctx, record); err != nil {
				log.Printf("record design history failed: %v", err)
			}
		}

		return nil, GenerateDesignResult{Specification: spec}, nil
	}
}

// ArchetypeRulesHandler looks up one archetype's rules. Unknown archetypes
// return a typed result listing the known identifiers.
func ArchetypeRulesHandler(svc *design.Service) mcp.ToolHandlerFor[ArchetypeRulesInput, ArchetypeRulesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input ArchetypeRulesInput) (*mcp.CallToolResult, ArchetypeRulesResult, error) {
		_, span := otel.Tracer(tracerName).Start(ctx, "get_archetype_rules")
		defer span.End()

		rule, err := svc.ArchetypeRules(input.EmotionalTone)
		if err != nil {
			if errors.Is(err, design.ErrUnknownArchetype) {
				available := make([]string, 0)
				for _, known := range svc.Catalog().Archetypes() {
					available = append(available, known.Name)
				}
				return nil, ArchetypeRulesResult{
					Error:     fmt.Sprintf("unknown archetype %q", input.EmotionalTone),
					Available: available,
				}, nil
			}
			return nil, ArchetypeRulesResult{}, err
		}

		return nil, ArchetypeRulesResult{
			Archetype:             rule.Name,
			CoreIntention:         rule.CoreIntention,
			CompositionPrinciple:  rule.CompositionPrinciple,
			WhyThisWorks:          rule.WhyThisWorks,
			SensoryPrinciples:     rule.SensoryPrinciples,
			ProportionRules:       rule.ProportionRules,
			Keywords:              rule.Keywords,
			ForbiddenCombinations: rule.ForbiddenCombinations,
			Examples:              rule.Examples,
		}, nil
	}
}

// DesignHistoryHandler lists recent design records. Without a configured
// store it reports storage as disabled instead of failing.
func DesignHistoryHandler(store storage.DesignRecordStore) mcp.ToolHandlerFor[DesignHistoryInput, DesignHistoryResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input DesignHistoryInput) (*mcp.CallToolResult, DesignHistoryResult, error) {
		ctx, span := otel.Tracer(tracerName).Start(ctx, "list_design_history")
		defer span.End()

		if store == nil {
			return nil, DesignHistoryResult{Records: []DesignHistoryRecord{}}, nil
		}

		limit := input.Limit
		if limit <= 0 {
			limit = defaultHistoryLimit
		}
		if limit > maxHistoryLimit {
			limit = maxHistoryLimit
		}

		stored, err := store.ListRecentDesignRecords(ctx, limit)
		if err != nil {
			return nil, DesignHistoryResult{}, fmt.Errorf("list design history: %w", err)
		}

		records := make([]DesignHistoryRecord, 0, len(stored))
		for _, record := range stored {
			records = append(records, DesignHistoryRecord{
				ID:            record.ID,
				Prompt:        record.Prompt,
				CharacterName: record.CharacterName,
				Archetype:     record.Archetype,
				DesignSeed:    record.DesignSeed,
				CreatedAt:     record.CreatedAt.Format(time.RFC3339),
			})
		}
		return nil, DesignHistoryResult{Records: records, StorageEnabled: true}, nil
	}
}
