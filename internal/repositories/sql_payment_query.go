package repositories

// query to payments table
var (
	queryPaymentCreate = `
		INSERT INTO payments(
			"id", "customer_id", "amount", "paid_at", "method", "notes", "reference", "source", "created_at"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, now()
		)
		RETURNING "id", "customer_id", "amount", "paid_at", "method", "notes", "reference", "source", "created_at";
	`

	queryPaymentListByCustomer = `SELECT
		"id", "customer_id", "amount", "paid_at", "method", "notes", "reference", "source", "created_at"
	FROM "payments"
	WHERE "customer_id" = $1
	ORDER BY "created_at" ASC, "id" ASC
	LIMIT $2;`

	queryPaymentExistsByReference = `SELECT EXISTS (SELECT 1 FROM "payments" WHERE "reference" = $1);`
)
