package main

import (
	"embed"
	"log"
	"path"

	cfg "github.com/automoto/floorcollision/config"
	"github.com/automoto/floorcollision/level"
	zaplog "github.com/automoto/floorcollision/log/zap"
	"github.com/automoto/floorcollision/scenes"
	"github.com/automoto/floorcollision/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

//go:embed all:assets/levels
var levelFS embed.FS

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return cfg.C.Width, cfg.C.Height
}

func newLogger() (*zap.Logger, error) {
	zc := zap.NewDevelopmentConfig()
	lvl, err := zap.ParseAtomicLevel(cfg.Debug.LogLevel)
	if err != nil {
		return nil, err
	}
	zc.Level = lvl
	return zc.Build()
}

func main() {
	zl, err := newLogger()
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	logger := zaplog.ZapLogger{L: zl}
	systems.SetLogger(logger)

	floors, names, err := level.LoadAll(levelFS, path.Join("assets", cfg.Floor.LevelsDir))
	if err != nil {
		zl.Fatal("load floors", zap.Error(err))
	}
	f, ok := floors[cfg.Floor.DefaultLevel]
	if !ok {
		f = floors[names[0]]
	}

	scene, err := scenes.NewFloorScene(f, logger)
	if err != nil {
		zl.Fatal("build floor scene", zap.Error(err), zap.String("floor", f.Name))
	}

	ebiten.SetWindowSize(cfg.C.Width*2, cfg.C.Height*2)
	ebiten.SetWindowTitle("floor collision")

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		zl.Fatal("run game", zap.Error(err))
	}
}
