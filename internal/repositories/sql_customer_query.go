package repositories

var customerColumns = []string{
	"id", "name", "phone", "email", "credit_ceiling", "created_at", "updated_at",
}

// query to customers table
var (
	queryCustomerCreate = `
		INSERT INTO customers(
			"id", "name", "phone", "email", "credit_ceiling", "created_at", "updated_at"
		)
		VALUES(
			$1, $2, $3, $4, $5, now(), now()
		)
		RETURNING "id", "name", "phone", "email", "credit_ceiling", "created_at", "updated_at";
	`

	queryCustomerGetByID = `SELECT
		"id", "name", "phone", "email", "credit_ceiling", "created_at", "updated_at"
	FROM "customers"
	WHERE "id" = $1;`

	queryCustomerUpdateCreditCeiling = `
		UPDATE "customers"
		SET "credit_ceiling" = $2, "updated_at" = now()
		WHERE "id" = $1
		RETURNING "id", "name", "phone", "email", "credit_ceiling", "created_at", "updated_at";
	`

	queryCustomerListIDsWithActivity = `SELECT c."id"
	FROM "customers" c
	WHERE EXISTS (SELECT 1 FROM "orders" o WHERE o."customer_id" = c."id")
		OR EXISTS (SELECT 1 FROM "payments" p WHERE p."customer_id" = c."id")
		OR EXISTS (SELECT 1 FROM "adjustments" a WHERE a."customer_id" = c."id")
	ORDER BY c."id" ASC
	LIMIT $1 OFFSET $2;`
)
