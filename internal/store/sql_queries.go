package store

const (
	getValue = `
		SELECT value
		FROM kv
		WHERE key = $1;`

	upsertValue = `
		INSERT INTO kv (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value      = excluded.value,
			updated_at = CURRENT_TIMESTAMP;`

	deleteValue = `
		DELETE FROM kv
		WHERE key = $1;`

	getMetaValue = `
		SELECT value
		FROM meta
		WHERE key = $1;`

	insertMetaValue = `
		INSERT INTO meta (key, value)
		VALUES ($1, $2);`
)
