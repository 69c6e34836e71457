package request

// SnapshotItemRequest is one valuation line of a snapshot registration.
// AssetID is nil for synthetic aggregate items such as the crypto total.
type SnapshotItemRequest struct {
	AssetID       *string `json:"assetId,omitempty"`
	AssetName     string  `json:"assetName"`
	CategoryName  string  `json:"assetCategoryName"`
	TotalValueBRL float64 `json:"totalValueBrl"`
	IsCryptoTotal bool    `json:"isCryptoTotal"`
}

// RegisterSnapshotRequest represents the request body for registering a snapshot
type RegisterSnapshotRequest struct {
	Notes string                `json:"notes"`
	Items []SnapshotItemRequest `json:"items"`
}

// UpdateSnapshotItemRequest corrects the captured value of a snapshot item.
type UpdateSnapshotItemRequest struct {
	TotalValueBRL float64 `json:"totalValueBrl"`
}
