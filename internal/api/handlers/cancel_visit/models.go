package cancel_visit

// CancelVisitRequest HTTP request model
type CancelVisitRequest struct {
	CancellationReason string `json:"cancellationReason"`
}
