package biz

const (
	// ProfileNamespace is the KV key holding the serialized recipient profiles.
	ProfileNamespace = "gift:profiles"
	// ProfilePayloadVersion guards the serialized envelope against schema drift.
	ProfilePayloadVersion = 1

	// Budget window bounds enforced on incoming requests, in yuan.
	BudgetFloor   = 0
	BudgetCeiling = 5000
	BudgetMinGap  = 100
)
