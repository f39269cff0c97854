package repositories

// query to adjustments table
var (
	queryAdjustmentCreate = `
		INSERT INTO adjustments(
			"id", "customer_id", "amount", "type", "adjusted_at", "remarks", "created_at"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, now()
		)
		RETURNING "id", "customer_id", "amount", "type", "adjusted_at", "remarks", "created_at";
	`

	queryAdjustmentListByCustomer = `SELECT
		"id", "customer_id", "amount", "type", "adjusted_at", "remarks", "created_at"
	FROM "adjustments"
	WHERE "customer_id" = $1
	ORDER BY "created_at" ASC, "id" ASC
	LIMIT $2;`
)
