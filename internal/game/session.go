package game

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"boxpush/internal/audio"
	"boxpush/internal/config"
	"boxpush/internal/graphics"
	"boxpush/internal/input"
	"boxpush/internal/level"
	"boxpush/internal/logger"
	"boxpush/internal/player"
	"boxpush/internal/profiling"
	"boxpush/internal/ui/menu"
)

// Session runs one level: it owns the level state and the player, and turns
// per-frame input into moves, pushes and feedback sounds. Rendering goes
// through the renderer and overlay the App hands in.
type Session struct {
	Level  *level.Level
	Player *player.Player

	audio *audio.Manager
	log   *logger.Logger

	lastPushTime  float64
	wasCompleted  bool
	showProfiling bool
}

// NewSession loads the level at index and places the player at its validated
// spawn. A validation failure is returned to the caller; the menu stays up.
func NewSession(index int, am *audio.Manager, log *logger.Logger) (*Session, error) {
	lvl, err := level.Load(index, log)
	if err != nil {
		return nil, fmt.Errorf("start level %d: %w", index, err)
	}

	if log != nil {
		log.Infof("level %d %q active, %d boxes", index, lvl.Name(), lvl.BoxCount())
	}

	s := &Session{
		Level:        lvl,
		Player:       player.New(lvl.Spawn()),
		audio:        am,
		log:          log,
		lastPushTime: -config.PushCooldown,
	}

	if am != nil {
		am.StartMusic(index)
		am.Play(audio.SoundLevelStart)
	}
	return s, nil
}

// Update advances one frame of gameplay. It returns ActionBack when the
// player leaves for the menu, ActionNone otherwise.
func (s *Session) Update(now, dt float64, im *input.InputManager) menu.Action {
	defer profiling.Track("session.Update")()

	if im.JustPressed(input.ActionPause) {
		return menu.ActionBack
	}
	if im.JustPressed(input.ActionToggleProfiling) {
		s.showProfiling = !s.showProfiling
	}
	if im.JustPressed(input.ActionReset) {
		spawn := s.Level.Reset()
		s.Player.SetPosition(spawn)
		s.Player.ResetCamera()
		s.wasCompleted = false
		if s.audio != nil {
			s.audio.Play(audio.SoundMenu)
		}
	}
	if im.JustPressed(input.ActionTeleport) {
		s.Player.SetPosition(s.Level.EmergencyTeleportSpawn())
		if s.log != nil {
			s.log.Warnf("emergency teleport to spawn on level %d", s.Level.Index())
		}
	}

	s.Level.UpdateParticles(now)

	if s.Level.Completed() {
		if !s.wasCompleted {
			s.wasCompleted = true
			if s.audio != nil {
				s.audio.StopMusic()
				s.audio.Play(audio.SoundFinalVictory)
			}
			if s.log != nil {
				s.log.Infof("level %d completed in %d moves", s.Level.Index(), s.Level.MoveCount())
			}
		}
		if im.JustPressed(input.ActionConfirm) {
			if s.Level.IsLast() {
				return menu.ActionBack
			}
			if err := s.advance(); err != nil {
				if s.log != nil {
					s.log.Errorf("advance failed: %v", err)
				}
				return menu.ActionBack
			}
		}
		return menu.ActionNone
	}

	s.movePlayer(now, dt, im)
	s.handlePush(now, im)
	return menu.ActionNone
}

func (s *Session) movePlayer(now, dt float64, im *input.InputManager) {
	desired := s.Player.MoveIntent(im, dt)
	if desired.X() == 0 && desired.Z() == 0 {
		return
	}

	disp := s.Level.ApplyPlayerDisplacement(s.Player.Position, desired)
	s.Player.Position = s.Player.Position.Add(disp)

	if s.Player.ConsumeFootstep(disp.Len(), now) && s.audio != nil {
		s.audio.Play(audio.SoundStep)
	}
}

func (s *Session) handlePush(now float64, im *input.InputManager) {
	if !im.JustPressed(input.ActionPush) {
		return
	}
	if now-s.lastPushTime < config.PushCooldown {
		return
	}

	dx, dz := s.Player.Facing()
	switch s.Level.AttemptPush(s.Player.Position, dx, dz, now) {
	case level.PushMoved:
		s.lastPushTime = now
		if s.audio != nil {
			s.audio.Play(audio.SoundPush)
		}
	case level.PushLanded:
		s.lastPushTime = now
		if s.audio != nil {
			s.audio.Play(audio.SoundVictory)
		}
	case level.PushBlocked:
		if s.audio != nil {
			s.audio.Play(audio.SoundBlocked)
		}
	}
}

// advance swaps in the next level without tearing the session down.
func (s *Session) advance() error {
	next := s.Level.Index() + 1
	lvl, err := level.Load(next, s.log)
	if err != nil {
		return err
	}

	s.Level = lvl
	s.Player.SetPosition(lvl.Spawn())
	s.Player.ResetCamera()
	s.wasCompleted = false
	s.lastPushTime = -config.PushCooldown

	if s.log != nil {
		s.log.Infof("level %d %q active, %d boxes", next, lvl.Name(), lvl.BoxCount())
	}
	if s.audio != nil {
		s.audio.StartMusic(next)
		s.audio.Play(audio.SoundLevelStart)
	}
	return nil
}

// Render draws the 3D scene from an immutable snapshot, then the HUD overlay.
func (s *Session) Render(r *graphics.Renderer, u *graphics.UI, now float64) {
	defer profiling.Track("session.Render")()

	dx, dz := s.Player.Facing()
	snap := s.Level.TakeSnapshot(s.Player.Position, dx, dz)

	r.Clear()
	r.RenderScene(s.Player.GetViewMatrix(), s.Level.Walls(), s.Level.Targets(), snap, now)
	if !snap.Completed {
		r.RenderCrosshair()
	}

	s.renderHUD(u, snap)
	if snap.Completed {
		s.renderVictory(u, snap)
	}
}

func (s *Session) renderHUD(u *graphics.UI, snap level.Snapshot) {
	white := mgl32.Vec3{1, 1, 1}
	dim := mgl32.Vec3{0.75, 0.75, 0.75}

	u.DrawFilledRect(10, 10, 330, 96, mgl32.Vec3{0, 0, 0}, 0.45)
	u.DrawText(snap.Name, 22, 40, 0.5, mgl32.Vec3{0.95, 0.8, 0.2})
	u.DrawText(fmt.Sprintf("Difficulty: %s", snap.Difficulty), 22, 66, 0.35, dim)
	u.DrawText(fmt.Sprintf("Moves: %d   Boxes: %d/%d",
		snap.MoveCount, snap.BoxesOnTarget, snap.TotalBoxes), 22, 92, 0.35, white)

	help := "WASD move  Space push  R reset  T unstuck  Esc menu"
	hw, _ := u.MeasureText(help, 0.3)
	u.DrawText(help, (config.WindowWidth-hw)/2, config.WindowHeight-16, 0.3, dim)

	if s.showProfiling {
		u.DrawText(profiling.TopN(5), 10, config.WindowHeight-44, 0.28, dim)
	}
}

func (s *Session) renderVictory(u *graphics.UI, snap level.Snapshot) {
	u.DrawFilledRect(0, 0, config.WindowWidth, config.WindowHeight, mgl32.Vec3{0, 0, 0}, 0.55)

	title := "Level Complete!"
	prompt := "Press Enter for the next level"
	if s.Level.IsLast() {
		title = "All levels complete!"
		prompt = "Press Enter to return to the menu"
	}

	tw, _ := u.MeasureText(title, 1.0)
	u.DrawText(title, (config.WindowWidth-tw)/2, 300, 1.0, mgl32.Vec3{0.95, 0.8, 0.2})

	moves := fmt.Sprintf("Solved in %d moves", snap.MoveCount)
	mw, _ := u.MeasureText(moves, 0.5)
	u.DrawText(moves, (config.WindowWidth-mw)/2, 350, 0.5, mgl32.Vec3{1, 1, 1})

	pw, _ := u.MeasureText(prompt, 0.4)
	u.DrawText(prompt, (config.WindowWidth-pw)/2, 400, 0.4, mgl32.Vec3{0.8, 0.8, 0.8})
}
