package model

// FileOverview summarizes one decoded midi file.
type FileOverview struct {
	HasHeader      bool            `json:"has_header"`
	Format         uint16          `json:"format"`
	DeclaredTracks uint16          `json:"declared_tracks"`
	Division       string          `json:"division,omitempty"`
	NumTracks      int             `json:"num_tracks"`
	NumAlienChunks int             `json:"num_alien_chunks"`
	NumEvents      int             `json:"num_events"`
	Tracks         []TrackOverview `json:"tracks"`
	Anomalies      []string        `json:"anomalies,omitempty"`
}

type TrackOverview struct {
	Name         string `json:"name,omitempty"`
	NumEvents    int    `json:"num_events"`
	ChannelVoice int    `json:"channel_voice"`
	Meta         int    `json:"meta"`
	SysEx        int    `json:"sys_ex"`
	Escape       int    `json:"escape"`
	TotalTicks   uint64 `json:"total_ticks"`
}
