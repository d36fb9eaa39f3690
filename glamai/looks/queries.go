package looks

const (
	queryCreate = `
		INSERT INTO looks (
			user_id, before_image, after_image, style, color, digest
		)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, before_image, after_image, style, color, digest, created_at
	`

	queryList = `
		SELECT id, user_id, before_image, after_image, style, color, digest, created_at
		FROM looks
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	queryCountByUser = `
		SELECT COUNT(*)
		FROM looks
		WHERE user_id = $1
	`

	queryGet = `
		SELECT id, user_id, before_image, after_image, style, color, digest, created_at
		FROM looks
		WHERE id = $1 AND user_id = $2
	`

	queryDelete = `
		DELETE FROM looks
		WHERE id = $1 AND user_id = $2
	`
)
