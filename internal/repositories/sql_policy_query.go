package repositories

var policyColumns = []string{
	"id", "customer_id", "policy_number", "insurer", "frequency", "issuance_date", "anchor_date",
	"installment_amount", "status", "created_at", "updated_at",
}

// query to policies and policy_payments tables
var (
	queryPolicyCreate = `
		INSERT INTO policies(
			"id", "customer_id", "policy_number", "insurer", "frequency", "issuance_date", "anchor_date",
			"installment_amount", "status", "created_at", "updated_at"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6, $7, $8, $9, now(), now()
		)
		RETURNING "id", "customer_id", "policy_number", "insurer", "frequency", "issuance_date", "anchor_date",
			"installment_amount", "status", "created_at", "updated_at";
	`

	queryPolicyGetByID = `SELECT
		"id", "customer_id", "policy_number", "insurer", "frequency", "issuance_date", "anchor_date",
		"installment_amount", "status", "created_at", "updated_at"
	FROM "policies"
	WHERE "id" = $1;`

	queryPolicyGetByIDForUpdate = `SELECT
		"id", "customer_id", "policy_number", "insurer", "frequency", "issuance_date", "anchor_date",
		"installment_amount", "status", "created_at", "updated_at"
	FROM "policies"
	WHERE "id" = $1
	FOR UPDATE;`

	queryPolicyListByAnchorBefore = `SELECT
		"id", "customer_id", "policy_number", "insurer", "frequency", "issuance_date", "anchor_date",
		"installment_amount", "status", "created_at", "updated_at"
	FROM "policies"
	WHERE "status" = ANY($1) AND "anchor_date" <= $2::date
	ORDER BY "anchor_date" ASC, "id" ASC
	LIMIT $3 OFFSET $4;`

	queryPolicyUpdateAnchor = `
		UPDATE "policies"
		SET "anchor_date" = $2, "updated_at" = now()
		WHERE "id" = $1
		RETURNING "id", "customer_id", "policy_number", "insurer", "frequency", "issuance_date", "anchor_date",
			"installment_amount", "status", "created_at", "updated_at";
	`

	queryPolicyPaymentCreate = `
		INSERT INTO policy_payments(
			"id", "policy_id", "paid_anchor", "new_anchor", "amount", "paid_at"
		)
		VALUES(
			$1, $2, $3, $4, $5, $6
		);
	`
)
