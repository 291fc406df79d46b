package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS resolutions (
    resolution_id   INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid        TEXT UNIQUE NOT NULL,
    resolved_at     DATETIME NOT NULL,
    version         TEXT NOT NULL,
    source          TEXT NOT NULL,
    metadata_path   TEXT,
    executable_path TEXT,
    tool_version    TEXT,
    created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_resolutions_resolved_at
    ON resolutions(resolved_at DESC);
CREATE INDEX IF NOT EXISTS idx_resolutions_version
    ON resolutions(version);

CREATE TABLE IF NOT EXISTS update_checks (
    check_id         INTEGER PRIMARY KEY AUTOINCREMENT,
    run_uuid         TEXT UNIQUE NOT NULL,
    checked_at       DATETIME NOT NULL,
    current_version  TEXT NOT NULL,
    current_source   TEXT NOT NULL,
    latest_version   TEXT NOT NULL,
    update_available INTEGER NOT NULL DEFAULT 0,
    direction        TEXT NOT NULL,
    tool_version     TEXT,
    created_at       DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_update_checks_checked_at
    ON update_checks(checked_at DESC);
`
