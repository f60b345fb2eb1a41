package systems

import (
	"sort"
	"strings"

	"github.com/automoto/warfront/components"
	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/shared/log"
	"github.com/automoto/warfront/ui"
	"github.com/yohamta/donburi/ecs"
)

func buildKeyMap(e *ecs.ECS, t *components.TitleData) {
	s := ui.NewScreen("KEY MAPPING")

	ids := make([]cfg.ActionID, 0, len(cfg.Input.Bindings))
	for id := range cfg.Input.Bindings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		s.AddText(keyMapLine(id, cfg.Input.Bindings[id]))
	}
	addReturn(e, s, components.ModeOptions)

	t.Screen = s
}

func keyMapLine(id cfg.ActionID, b cfg.InputBinding) string {
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		keys = append(keys, k.String())
	}
	if len(keys) == 0 {
		keys = append(keys, "Unbound")
	}
	return id.String() + ": " + strings.Join(keys, ", ")
}

// defaultCredits is shown when the data directories carry no credits file.
var defaultCredits = []string{
	"WARFRONT",
	"",
	"Programming",
	"The warfront developers",
	"",
	"Thanks for playing!",
}

func buildCredits(e *ecs.ECS, t *components.TitleData) {
	svc := GetOrCreateServices(e)
	s := ui.NewScreen("CREDITS")
	s.Scrolling = true

	quit := func() { ChangeTitleMode(e, components.ModeQuit) }
	s.AddButton(itemReturn, "Quit", func(ui.Trigger) { quit() })
	s.OnCancel(quit)

	for _, line := range creditLines(svc) {
		s.AddText(line)
	}

	t.Screen = s
}

func creditLines(svc *components.ServicesData) []string {
	if svc.Files == nil {
		return defaultCredits
	}
	data, err := svc.Files.ReadFile(cfg.Frontend.CreditsFile)
	if err != nil {
		log.Debug("[frontend] using built in credits: %v", err)
		return defaultCredits
	}
	return strings.Split(strings.TrimRight(strings.ReplaceAll(string(data), "\r\n", "\n"), "\n"), "\n")
}
