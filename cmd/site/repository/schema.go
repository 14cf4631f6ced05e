package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/midwaymobile/storage-site/common/db"
)

// schema is idempotent DDL run at boot via the bootstrap DB init hook
const schema = `
CREATE TABLE IF NOT EXISTS quote (
	id             UUID PRIMARY KEY,
	name           TEXT NOT NULL,
	email          TEXT NOT NULL,
	phone          TEXT NOT NULL DEFAULT '',
	container_size TEXT NOT NULL,
	delivery_zip   TEXT NOT NULL DEFAULT '',
	message        TEXT NOT NULL DEFAULT '',
	status         TEXT NOT NULL,
	created_at     TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS message (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	phone      TEXT NOT NULL DEFAULT '',
	subject    TEXT NOT NULL DEFAULT '',
	body       TEXT NOT NULL,
	read       BOOLEAN NOT NULL DEFAULT FALSE,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS inventory_item (
	id          UUID PRIMARY KEY,
	name        TEXT NOT NULL,
	size        TEXT NOT NULL,
	condition   TEXT NOT NULL,
	price_cents BIGINT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	available   BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS application (
	id         UUID PRIMARY KEY,
	name       TEXT NOT NULL,
	email      TEXT NOT NULL,
	phone      TEXT NOT NULL DEFAULT '',
	position   TEXT NOT NULL,
	cover_note TEXT NOT NULL DEFAULT '',
	status     TEXT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS container_order (
	id            UUID PRIMARY KEY,
	customer_name TEXT NOT NULL,
	email         TEXT NOT NULL,
	phone         TEXT NOT NULL DEFAULT '',
	item_id       UUID NOT NULL,
	quantity      INTEGER NOT NULL,
	notes         TEXT NOT NULL DEFAULT '',
	status        TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL
);
`

// Migrate creates all tables if they do not exist yet
func Migrate(database *db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := database.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	return nil
}
