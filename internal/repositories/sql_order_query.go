package repositories

// query to orders table
var (
	queryOrderCreate = `
		INSERT INTO orders(
			"id", "customer_id", "display_id", "total_value", "order_date", "status", "source", "created_at"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, now()
		)
		RETURNING "id", "customer_id", "display_id", "total_value", "order_date", "status", "source", "created_at";
	`

	queryOrderListByCustomer = `SELECT
		"id", "customer_id", "display_id", "total_value", "order_date", "status", "source", "created_at"
	FROM "orders"
	WHERE "customer_id" = $1
	ORDER BY "created_at" ASC, "id" ASC
	LIMIT $2;`
)
