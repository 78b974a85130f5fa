package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS line_items (
    id                TEXT PRIMARY KEY,
    position          INTEGER NOT NULL,
    description       TEXT NOT NULL DEFAULT '',
    event_phase       TEXT NOT NULL DEFAULT '',
    item_type         TEXT NOT NULL DEFAULT '',
    cost              TEXT NOT NULL DEFAULT '',
    cost_type         TEXT NOT NULL DEFAULT '',
    status            TEXT NOT NULL DEFAULT '',
    exclude_from_sum  INTEGER NOT NULL DEFAULT 0,
    done              INTEGER NOT NULL DEFAULT 0,
    imported_at       TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_items_position ON line_items(position);
CREATE INDEX IF NOT EXISTS idx_items_phase ON line_items(event_phase);
CREATE INDEX IF NOT EXISTS idx_items_status ON line_items(status);
`
