package file

import (
	"github.com/Cierra-Runis/relocate/meta"
	"github.com/Cierra-Runis/relocate/model"
	"github.com/Cierra-Runis/relocate/smf"
)

// CreateOverview reduces a decoded file and its anomalies to the
// overview DTO used by the report command and the inspection API.
func CreateOverview(f *smf.File, anomalies []smf.Anomaly) model.FileOverview {
	res := model.FileOverview{
		NumAlienChunks: len(f.Aliens()),
	}
	if header := f.Header(); header != nil {
		res.HasHeader = true
		res.Format = header.Format
		res.DeclaredTracks = header.TrackCount
		res.Division = header.Division.String()
	}
	for _, track := range f.Tracks() {
		overview := createTrackOverview(track)
		res.NumTracks += 1
		res.NumEvents += overview.NumEvents
		res.Tracks = append(res.Tracks, overview)
	}
	for _, a := range anomalies {
		res.Anomalies = append(res.Anomalies, a.String())
	}
	return res
}

func createTrackOverview(track *smf.Track) model.TrackOverview {
	var res model.TrackOverview
	res.NumEvents = len(track.Events)
	for _, evt := range track.Events {
		res.TotalTicks += uint64(evt.Delta)
		switch body := evt.Body.(type) {
		case smf.ChannelVoice:
			res.ChannelVoice += 1
		case smf.Meta:
			res.Meta += 1
			if res.Name == "" && body.Type == meta.TypeTrackName {
				res.Name = string(body.Data)
			}
		case smf.SystemExclusive:
			res.SysEx += 1
		case smf.Escape:
			res.Escape += 1
		}
	}
	return res
}
