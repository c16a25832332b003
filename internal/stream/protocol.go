package stream

// Frame is the snapshot broadcast to spectators after every pass. Material
// and Energy are byte layers (base64 in JSON); Hue holds one value per cell.
type Frame struct {
	Type     string   `json:"type"`
	Tick     int      `json:"tick"`
	W        int      `json:"w"`
	H        int      `json:"h"`
	Material []byte   `json:"material"`
	Hue      []uint16 `json:"hue"`
	Energy   []byte   `json:"energy"`
	Dropped  int      `json:"dropped"`
	Paused   bool     `json:"paused"`
}

// Command types accepted from clients.
const (
	CmdPlace  = "place"
	CmdPaint  = "paint"
	CmdResize = "resize"
	CmdReset  = "reset"
	CmdPause  = "pause"
	CmdStep   = "step"
)

// Command is a client request. Only the fields relevant to Type are read.
type Command struct {
	Type     string `json:"type"`
	Col      int    `json:"col,omitempty"`
	Row      int    `json:"row,omitempty"`
	Material string `json:"material,omitempty"`
	Cols     int    `json:"cols,omitempty"`
	Rows     int    `json:"rows,omitempty"`
	Seed     int64  `json:"seed,omitempty"`
	Paused   bool   `json:"paused,omitempty"`
}
