package database

const schema = `
CREATE TABLE anime (
	id INTEGER PRIMARY KEY,
	title TEXT NOT NULL DEFAULT '',
	type INTEGER NOT NULL DEFAULT 0,
	image_url TEXT NOT NULL DEFAULT '',
	producers TEXT NOT NULL DEFAULT '',
	genres TEXT NOT NULL DEFAULT '',
	date_start TEXT NOT NULL DEFAULT '',
	date_end TEXT NOT NULL DEFAULT '',
	synopsis TEXT NOT NULL DEFAULT '',
	last_modified INTEGER NOT NULL DEFAULT 0,
	created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX idx_anime_date_start ON anime(date_start);
CREATE INDEX idx_anime_last_modified ON anime(last_modified);
`

// migrations contains incremental schema changes
// Each migration is applied in order based on the current user_version
// migrations[0] is empty because version 0 uses the base schema
var migrations = []string{
	"",
}
