package request

// StageRequest moves a pipeline item to another board stage. Revision is the
// last revision the caller saw; zero skips the optimistic concurrency check.
type StageRequest struct {
	Stage    string `json:"stage" binding:"required"`
	Actor    string `json:"actor"`
	Revision int64  `json:"revision"`
}
