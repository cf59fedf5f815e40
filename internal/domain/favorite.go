package domain

type Favorite struct {
	ID        int32  `json:"id"`
	UserID    int32  `json:"user_id"`
	ToolID    int32  `json:"tool_id"`
	Tool      *Tool  `json:"tool,omitempty"`
	CreatedOn string `json:"created_on"`
}
