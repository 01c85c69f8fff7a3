package store

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"

	entschema "github.com/abhisek/studyhub/ent/schema"
)

const eventsTable = "llm_request_events"

// eventTable builds the migration table for entschema.LLMRequestEvent: an
// auto-increment id, then the mixin fields, then the entity fields.
func eventTable() (*schema.Table, error) {
	def := entschema.LLMRequestEvent{}

	var (
		fields  []ent.Field
		indexes []ent.Index
	)
	for _, m := range def.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, def.Fields()...)
	indexes = append(indexes, def.Indexes()...)

	id := &schema.Column{Name: "id", Type: field.TypeInt, Increment: true}
	t := &schema.Table{
		Name:       eventsTable,
		Columns:    []*schema.Column{id},
		PrimaryKey: []*schema.Column{id},
	}
	byName := map[string]*schema.Column{id.Name: id}

	for _, f := range fields {
		d := f.Descriptor()
		if d.Err != nil {
			return nil, fmt.Errorf("field %s: %w", d.Name, d.Err)
		}
		c := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Size:     int64(d.Size),
			Unique:   d.Unique,
			Nullable: d.Optional,
			Default:  literalDefault(d.Default),
			Comment:  d.Comment,
		}
		t.Columns = append(t.Columns, c)
		byName[c.Name] = c
	}

	for _, ix := range indexes {
		d := ix.Descriptor()
		cols := make([]*schema.Column, 0, len(d.Fields))
		for _, name := range d.Fields {
			c, ok := byName[name]
			if !ok {
				return nil, fmt.Errorf("index on unknown field %q", name)
			}
			cols = append(cols, c)
		}
		t.Indexes = append(t.Indexes, &schema.Index{
			Name:    "llmrequestevent_" + strings.Join(d.Fields, "_"),
			Unique:  d.Unique,
			Columns: cols,
		})
	}
	return t, nil
}

// literalDefault keeps defaults the database can store; function defaults
// such as time.Now are applied on insert instead.
func literalDefault(v any) any {
	switch v.(type) {
	case string, bool, int, int64, float64:
		return v
	default:
		return nil
	}
}
