package database

// position keeps the catalog in insertion order, trains.id is the public key.
var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		username   TEXT PRIMARY KEY,
		password   TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS trains (
		id              INTEGER PRIMARY KEY,
		position        INTEGER NOT NULL,
		name            TEXT NOT NULL,
		route           TEXT NOT NULL,
		total_seats     INTEGER NOT NULL CHECK (total_seats >= 0),
		available_seats INTEGER NOT NULL CHECK (available_seats >= 0 AND available_seats <= total_seats),
		fare            INTEGER NOT NULL CHECK (fare > 0),
		departure       TEXT NOT NULL,
		arrival         TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		booking_id   INTEGER NOT NULL,
		username     TEXT NOT NULL REFERENCES accounts (username),
		train_id     INTEGER NOT NULL REFERENCES trains (id),
		train_name   TEXT NOT NULL,
		seats        INTEGER NOT NULL CHECK (seats > 0),
		total_fare   INTEGER NOT NULL,
		status       TEXT NOT NULL,
		created_at   TIMESTAMP NOT NULL,
		cancelled_at TIMESTAMP NULL,
		UNIQUE (username, booking_id)
	)`,
}

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		username   TEXT PRIMARY KEY,
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS trains (
		id              BIGINT PRIMARY KEY,
		position        INTEGER NOT NULL,
		name            TEXT NOT NULL,
		route           TEXT NOT NULL,
		total_seats     INTEGER NOT NULL CHECK (total_seats >= 0),
		available_seats INTEGER NOT NULL CHECK (available_seats >= 0 AND available_seats <= total_seats),
		fare            BIGINT NOT NULL CHECK (fare > 0),
		departure       TEXT NOT NULL,
		arrival         TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id           BIGSERIAL PRIMARY KEY,
		booking_id   BIGINT NOT NULL,
		username     TEXT NOT NULL REFERENCES accounts (username),
		train_id     BIGINT NOT NULL REFERENCES trains (id),
		train_name   TEXT NOT NULL,
		seats        INTEGER NOT NULL CHECK (seats > 0),
		total_fare   BIGINT NOT NULL,
		status       TEXT NOT NULL,
		created_at   TIMESTAMPTZ NOT NULL,
		cancelled_at TIMESTAMPTZ NULL,
		UNIQUE (username, booking_id)
	)`,
}
