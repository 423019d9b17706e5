// Package store is the persistence gateway for the managed content kinds.
// Writes take normalized records, reads come back as column/value rows.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"partyinbangalore-backend/model"
	"strings"
)

var ErrNotFound = errors.New("store: no record found")

// table binds a kind to its relation. cols is the write whitelist,
// jsonCols marks the jsonb columns that round-trip structured values and
// hidden lists columns that are written but never leave generic reads.
type table struct {
	name     string
	cols     map[string]bool
	jsonCols map[string]bool
	hidden   map[string]bool
}

var tables = map[model.Kind]table{
	model.KindEvent: {
		name: "events",
		cols: set("title", "category", "event_date", "start_time", "end_time",
			"venue_id", "organizer_id", "price_display", "price_value",
			"poster_images", "event_details", "terms_and_conditions",
			"google_map_url", "ticket_types"),
		jsonCols: set("poster_images", "ticket_types"),
	},
	model.KindVenue: {
		name: "venues",
		cols: set("name", "location", "image_url", "capacity", "cost_per_slot",
			"amenities", "details", "menu", "gallery", "event_photos",
			"available_slots"),
		jsonCols: set("amenities", "details", "menu", "gallery", "event_photos",
			"available_slots"),
	},
	model.KindCategory: {
		name: "categories",
		cols: set("name", "icon"),
	},
	model.KindPromo: {
		name: "promos",
		cols: set("title", "subtitle", "background_url", "event_id",
			"link_type", "button_link", "button_text"),
	},
	model.KindPartner: {
		name: "partners",
		cols: set("name", "logo_url", "website_url"),
	},
	model.KindGallery: {
		name:     "galleries",
		cols:     set("event_id", "image_urls", "caption"),
		jsonCols: set("image_urls"),
	},
	model.KindHighlight: {
		name:     "highlights",
		cols:     set("event_id", "media_url", "caption"),
		jsonCols: set("media_url"),
	},
	model.KindOrganizer: {
		name:   "users",
		cols:   set("name", "username", "password", "role"),
		hidden: set("password", "phone"),
	},
}

func set(cols ...string) map[string]bool {
	m := make(map[string]bool, len(cols))
	for _, c := range cols {
		m[c] = true
	}
	return m
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Row is one read result, keyed by column name.
type Row map[string]interface{}

func (s *Store) List(ctx context.Context, kind model.Kind) ([]Row, error) {
	t, err := lookup(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT * FROM %s ORDER BY id DESC`, t.name)
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list: error querying %s: %w", t.name, err)
	}
	defer rows.Close()

	return scanRows(rows, t)
}

func (s *Store) Get(ctx context.Context, kind model.Kind, id int64) (Row, error) {
	t, err := lookup(kind)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`SELECT * FROM %s WHERE id = $1`, t.name)
	rows, err := s.db.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("get: error querying %s: %w", t.name, err)
	}
	defer rows.Close()

	out, err := scanRows(rows, t)
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrNotFound
	}
	return out[0], nil
}

// Save routes a normalized record to insert or update. Persisted is set
// only after the row is confirmed to exist; a positive id with no backing
// row is a NotFound, never a silent insert.
func (s *Store) Save(ctx context.Context, rec *model.Record) (int64, error) {
	t, err := lookup(rec.Kind)
	if err != nil {
		return 0, err
	}

	cols, vals, err := bind(t, rec)
	if err != nil {
		return 0, err
	}

	if rec.ID > 0 {
		if _, err := s.Get(ctx, rec.Kind, rec.ID); err != nil {
			return 0, fmt.Errorf("save: %s: id %d: %w", t.name, rec.ID, err)
		}
		rec.Persisted = true
		if err := s.update(ctx, t, rec.ID, cols, vals); err != nil {
			return 0, err
		}
		return rec.ID, nil
	}

	id, err := s.create(ctx, t, cols, vals)
	if err != nil {
		return 0, err
	}
	rec.ID = id
	rec.Persisted = true
	return id, nil
}

func (s *Store) Delete(ctx context.Context, kind model.Kind, id int64) error {
	t, err := lookup(kind)
	if err != nil {
		return err
	}

	query := fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, t.name)
	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete: error deleting from %s: %w", t.name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete: error reading affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) create(ctx context.Context, t table, cols []string, vals []interface{}) (int64, error) {
	var params []string
	for i := range cols {
		params = append(params, fmt.Sprintf("$%d", i+1))
	}

	tsql := fmt.Sprintf(`INSERT INTO %s(%s) VALUES (%s) RETURNING id`,
		t.name, strings.Join(cols, ", "), strings.Join(params, ", "))

	var id int64
	err := s.db.QueryRowContext(ctx, tsql, vals...).Scan(&id)
	if err != nil {
		return -1, fmt.Errorf("create: unable to insert record in %s: %w", t.name, err)
	}
	return id, nil
}

func (s *Store) update(ctx context.Context, t table, id int64, cols []string, vals []interface{}) error {
	var setList []string
	for i, col := range cols {
		setList = append(setList, fmt.Sprintf("%s = $%d", col, i+1))
	}

	tsql := fmt.Sprintf(`UPDATE %s SET %s WHERE id = $%d`,
		t.name, strings.Join(setList, ", "), len(cols)+1)

	result, err := s.db.ExecContext(ctx, tsql, append(vals, id)...)
	if err != nil {
		return fmt.Errorf("update: unable to update record in %s: %w", t.name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update: error reading affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func lookup(kind model.Kind) (table, error) {
	t, ok := tables[kind]
	if !ok {
		return table{}, fmt.Errorf("store: no table registered for kind: %q", kind)
	}
	return t, nil
}

// bind filters the record down to whitelisted columns and marshals values
// headed for jsonb columns.
func bind(t table, rec *model.Record) ([]string, []interface{}, error) {
	var cols []string
	var vals []interface{}
	for i, col := range rec.Cols {
		if !t.cols[col] {
			return nil, nil, fmt.Errorf("bind: column %q not allowed on %s", col, t.name)
		}
		v := rec.Vals[i]
		if t.jsonCols[col] {
			b, err := json.Marshal(v)
			if err != nil {
				return nil, nil, fmt.Errorf("bind: error marshalling %s.%s: %w", t.name, col, err)
			}
			v = b
		}
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return cols, vals, nil
}

func scanRows(rows *sql.Rows, t table) ([]Row, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("scanRows: error reading columns: %w", err)
	}

	var out []Row
	for rows.Next() {
		holders := make([]interface{}, len(columns))
		for i := range holders {
			holders[i] = new(interface{})
		}
		if err := rows.Scan(holders...); err != nil {
			return nil, fmt.Errorf("scanRows: error scanning row: %w", err)
		}

		row := Row{}
		for i, col := range columns {
			if t.hidden[col] {
				continue
			}
			v := *(holders[i].(*interface{}))
			if raw, ok := v.([]byte); ok {
				if t.jsonCols[col] {
					var decoded interface{}
					if err := json.Unmarshal(raw, &decoded); err != nil {
						return nil, fmt.Errorf("scanRows: error decoding %s.%s: %w", t.name, col, err)
					}
					v = decoded
				} else {
					v = string(raw)
				}
			}
			row[col] = v
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scanRows: error iterating rows: %w", err)
	}
	return out, nil
}
