package components

import (
	cfg "github.com/automoto/warfront/config"
	"github.com/yohamta/donburi"
)

// AudioData queues menu sound effects until the audio system runs (singleton component)
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
