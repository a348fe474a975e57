package db

// Batch lifecycle states.
// pending → ready_for_delivery → assigned → delivering → delivered,
// side branch pending|ready_for_delivery → merged, any → cancelled.
const (
	BatchStatusPending          = "pending"
	BatchStatusReadyForDelivery = "ready_for_delivery"
	BatchStatusAssigned         = "assigned"
	BatchStatusDelivering       = "delivering"
	BatchStatusDelivered        = "delivered"
	BatchStatusMerged           = "merged"
	BatchStatusCancelled        = "cancelled"
)

// Order approval states.
const (
	OrderApprovalPending  = "pending"
	OrderApprovalApproved = "approved"
	OrderApprovalRejected = "rejected"
)

// Order delivery states.
const (
	OrderDeliveryPending   = "pending"
	OrderDeliveryDelivered = "delivered"
)
