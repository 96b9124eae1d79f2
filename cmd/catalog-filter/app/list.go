package app

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"sigs.k8s.io/yaml"

	"github.com/aakanksha-arun/backstage/internal/match"
	"github.com/aakanksha-arun/backstage/pkg/catalog"
	"github.com/aakanksha-arun/backstage/pkg/filtering"
)

var listCmd = &cobra.Command{
	Use:   "list [paths...]",
	Short: "List catalog entities matching the active filters",
	Long: `List loads entity YAML documents from the given files or directories
(default "."), narrows them with the active filters, and prints the result.

Kind and type filters reduce the set the way a catalog backend would before
transfer; tag and user-list filters run as client-side predicates. Name
patterns are glob-matched with exclude taking precedence over include.`,
	RunE: runList,
}

func init() {
	flags := listCmd.Flags()
	flags.String("kind", "", "Keep entities of this kind (e.g. component, api)")
	flags.String("type", "", "Keep entities with this spec.type (e.g. service, website)")
	flags.StringArray("tag", nil, "Require this tag; repeatable, all must be present")
	flags.String("user-list", "all", "Viewer relationship to keep: owned, starred or all")
	flags.String("viewer", "", "Viewer entity reference (e.g. user:default/alice)")
	flags.StringArray("starred", nil, "Entity reference starred by the viewer; repeatable")
	flags.StringArray("name", nil, "Include only entity names matching this glob; repeatable")
	flags.StringArray("exclude-name", nil, "Drop entity names matching this glob; repeatable")
	flags.StringP("output", "o", "table", "Output format: table, json or yaml")

	for _, name := range []string{"kind", "type", "tag", "user-list", "viewer", "starred", "name", "exclude-name", "output"} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			slog.Error("Error binding list flag", "flag", name, "error", err)
		}
	}
}

func runList(_ *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}

	entities, err := catalog.LoadPaths(paths)
	if err != nil {
		return fmt.Errorf("failed to load entities: %w", err)
	}
	slog.Debug("Loaded entities", "count", len(entities), "paths", paths)

	composite, err := buildComposite()
	if err != nil {
		return err
	}

	env, err := buildEnvironment(entities)
	if err != nil {
		return err
	}

	// Reduce the way the catalog backend would before transfer.
	params := composite.CatalogFilters()
	narrowed := entities
	if len(params) > 0 {
		narrowed = make([]catalog.Entity, 0, len(entities))
		for _, entity := range entities {
			if params.Matches(entity) {
				narrowed = append(narrowed, entity)
			}
		}
		slog.Debug("Applied catalog query parameters",
			"fields", params.Fields(),
			"before", len(entities),
			"after", len(narrowed))
	}

	kept := composite.Apply(narrowed, env)
	slog.Debug("Applied client-side predicates",
		"before", len(narrowed),
		"after", len(kept))

	kept = applyNamePatterns(kept)

	return render(kept, viper.GetString("output"))
}

// buildComposite assembles the active filters from the bound flags.
func buildComposite() (filtering.Composite, error) {
	var filters []filtering.EntityFilter

	if kind := viper.GetString("kind"); kind != "" {
		filters = append(filters, filtering.NewKindFilter(strings.ToLower(kind)))
	}
	if specType := viper.GetString("type"); specType != "" {
		filters = append(filters, filtering.NewTypeFilter(specType))
	}
	if tags := viper.GetStringSlice("tag"); len(tags) > 0 {
		filters = append(filters, filtering.NewTagFilter(tags...))
	}

	userList, err := filtering.ParseUserListKind(viper.GetString("user-list"))
	if err != nil {
		return filtering.Composite{}, err
	}
	filters = append(filters, filtering.NewUserListFilter(userList))

	return filtering.Compose(filters...), nil
}

// buildEnvironment constructs the per-pass evaluation context: the viewer
// (resolved against the loaded entities, or synthesized from the reference)
// and the starred membership test built from the --starred flags.
func buildEnvironment(entities []catalog.Entity) (filtering.Environment, error) {
	var env filtering.Environment

	if viewer := viper.GetString("viewer"); viewer != "" {
		ref, err := parseViewerRef(viewer)
		if err != nil {
			return env, err
		}
		env.User = resolveViewer(entities, ref)
	}

	if starred := viper.GetStringSlice("starred"); len(starred) > 0 {
		set := make(map[string]struct{}, len(starred))
		for _, s := range starred {
			ref, err := catalog.ParseRef(s)
			if err != nil {
				return env, fmt.Errorf("invalid starred reference: %w", err)
			}
			set[refKey(ref)] = struct{}{}
		}
		env.IsStarred = func(entity catalog.Entity) bool {
			_, ok := set[refKey(entity.Ref())]
			return ok
		}
	}

	return env, nil
}

// parseViewerRef accepts a full entity reference or a bare user name.
func parseViewerRef(s string) (catalog.Ref, error) {
	if !strings.Contains(s, ":") {
		s = catalog.KindUser + ":" + s
	}
	ref, err := catalog.ParseRef(s)
	if err != nil {
		return catalog.Ref{}, fmt.Errorf("invalid viewer reference: %w", err)
	}
	return ref, nil
}

// resolveViewer finds the viewer among the loaded entities so that group
// memberships participate in ownership checks. When the viewer is not part
// of the loaded set, a minimal entity with the same reference is used; it
// still owns entities that reference it directly.
func resolveViewer(entities []catalog.Entity, ref catalog.Ref) *catalog.Entity {
	for i := range entities {
		if refKey(entities[i].Ref()) == refKey(ref) {
			return &entities[i]
		}
	}
	return &catalog.Entity{
		Kind: ref.Kind,
		Metadata: catalog.Metadata{
			Name:      ref.Name,
			Namespace: ref.Namespace,
		},
	}
}

func refKey(ref catalog.Ref) string {
	return strings.ToLower(ref.String())
}

// applyNamePatterns runs the glob include/exclude matching over the entity
// names, logging the decision reasons.
func applyNamePatterns(entities []catalog.Entity) []catalog.Entity {
	include := viper.GetStringSlice("name")
	exclude := viper.GetStringSlice("exclude-name")
	if len(include) == 0 && len(exclude) == 0 {
		return entities
	}

	matcher := match.NewNameMatcher()
	kept := make([]catalog.Entity, 0, len(entities))
	for _, entity := range entities {
		included, reason := matcher.ShouldInclude(entity.Metadata.Name, include, exclude)
		slog.Debug("Matched entity name",
			"name", entity.Metadata.Name,
			"included", included,
			"reason", reason)
		if included {
			kept = append(kept, entity)
		}
	}
	return kept
}

func render(entities []catalog.Entity, format string) error {
	switch strings.ToLower(format) {
	case "table", "":
		return renderTable(entities)
	case "json":
		output, err := json.MarshalIndent(entities, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to render JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	case "yaml":
		output, err := yaml.Marshal(entities)
		if err != nil {
			return fmt.Errorf("failed to render YAML: %w", err)
		}
		fmt.Print(string(output))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
	}
}

func renderTable(entities []catalog.Entity) error {
	table := tablewriter.NewTable(os.Stdout)
	table.Header("NAME", "KIND", "TYPE", "NAMESPACE", "TAGS")
	for _, entity := range entities {
		if err := table.Append([]string{
			entity.Metadata.Name,
			entity.Kind,
			entity.SpecType(),
			entity.Metadata.Namespace,
			strings.Join(entity.Metadata.Tags, ","),
		}); err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}
	fmt.Printf("%d entities\n", len(entities))
	return nil
}
