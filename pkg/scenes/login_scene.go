package scenes

import (
	"fmt"
	"log"

	"github.com/Akhipbm/Traffic-runner/pkg/config"
	"github.com/Akhipbm/Traffic-runner/pkg/game"
	"github.com/Akhipbm/Traffic-runner/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const (
	loginBoxX = 100.0
	loginBoxY = 230.0
	loginBoxW = 400.0
	loginBoxH = 44.0

	boardTop   = 360.0
	boardRowH  = 28.0
	boardWidth = 400.0
)

// LoginScene 驾驶员登录界面
// 输入名称后回车登录；下方排行榜可选择已有驾驶员或删除记录
type LoginScene struct {
	session  *game.Session
	input    *utils.TextInput
	errMsg   string
	selected int
}

// NewLoginScene 创建登录场景，lastDriver 非空时预填到输入框
func NewLoginScene(session *game.Session, lastDriver string) *LoginScene {
	input := utils.NewTextInput(game.MaxPlayerNameLength, game.IsPlayerNameRune)
	input.Insert(lastDriver)
	return &LoginScene{
		session:  session,
		input:    input,
		selected: -1,
	}
}

// Update 处理名称输入和排行榜操作
func (s *LoginScene) Update(deltaTime float64) {
	s.input.Update(deltaTime)

	switch {
	case utils.IsAnyKeyJustPressed(ebiten.KeyEnter, ebiten.KeyNumpadEnter):
		s.submit()
	case utils.IsAnyKeyJustPressed(ebiten.KeyArrowUp):
		s.moveSelection(-1)
	case utils.IsAnyKeyJustPressed(ebiten.KeyArrowDown):
		s.moveSelection(1)
	case utils.IsAnyKeyJustPressed(ebiten.KeyTab):
		s.useSelected()
	case utils.IsAnyKeyJustPressed(ebiten.KeyDelete):
		s.deleteSelected()
	}

	if clicked, x, y := utils.IsJustTouchedOrClicked(); clicked {
		if row := rowAt(float64(x), float64(y), len(s.users())); row >= 0 {
			s.selected = row
			s.useSelected()
		}
	}
}

// submit 以输入框中的名称登录，失败时显示错误
func (s *LoginScene) submit() {
	if err := s.session.Login(s.input.Value()); err != nil {
		s.errMsg = err.Error()
		log.Printf("[LoginScene] login rejected: %v", err)
		return
	}
	s.errMsg = ""
}

func (s *LoginScene) users() []game.UserRecord {
	users := s.session.Scoreboard().Users()
	if len(users) > config.LeaderboardRows {
		users = users[:config.LeaderboardRows]
	}
	return users
}

func (s *LoginScene) moveSelection(delta int) {
	n := len(s.users())
	if n == 0 {
		s.selected = -1
		return
	}
	s.selected += delta
	if s.selected < 0 {
		s.selected = 0
	}
	if s.selected >= n {
		s.selected = n - 1
	}
}

// useSelected 把选中的驾驶员名称填入输入框
func (s *LoginScene) useSelected() {
	users := s.users()
	if s.selected < 0 || s.selected >= len(users) {
		return
	}
	s.input.Clear()
	s.input.Insert(users[s.selected].Name)
	s.errMsg = ""
}

// deleteSelected 删除选中的驾驶员记录
func (s *LoginScene) deleteSelected() {
	users := s.users()
	if s.selected < 0 || s.selected >= len(users) {
		return
	}
	s.session.DeleteUser(users[s.selected].Name)
	s.moveSelection(0)
}

// errorLines 把错误信息折成适合输入框宽度的行
func errorLines(msg string) []string {
	if msg == "" {
		return nil
	}
	return utils.WrapText(msg, uiFace, loginBoxW)
}

// rowAt 点击位置对应的排行榜行号，不在任何行上返回 -1
func rowAt(x, y float64, rows int) int {
	left := (float64(config.GameWindowWidth) - boardWidth) / 2
	if x < left || x >= left+boardWidth || y < boardTop {
		return -1
	}
	row := int((y - boardTop) / boardRowH)
	if row >= rows {
		return -1
	}
	return row
}

// leaderboardLine 排行榜的一行文本
func leaderboardLine(rank int, u game.UserRecord) string {
	return fmt.Sprintf("%2d. %-20s %6d", rank, u.Name, u.HighScore)
}

// Draw 绘制登录界面
func (s *LoginScene) Draw(screen *ebiten.Image) {
	w := float64(config.GameWindowWidth)
	screen.Fill(colorHousing)

	drawText(screen, "TRAFFIC RUNNER", w/2, 110, 4, colorWhite, text.AlignCenter)
	drawText(screen, "Obey the rules. Earn the points.", w/2, 160, 1.2, colorMuted, text.AlignCenter)

	drawText(screen, "DRIVER NAME", loginBoxX, loginBoxY-16, 1, colorMuted, text.AlignStart)
	fillRect(screen, loginBoxX, loginBoxY, loginBoxW, loginBoxH, colorWhite)
	strokeRect(screen, loginBoxX, loginBoxY, loginBoxW, loginBoxH, 2, colorBlue)
	drawText(screen, s.input.Display(), loginBoxX+12, loginBoxY+loginBoxH/2, 2, colorBlack, text.AlignStart)

	for i, line := range errorLines(s.errMsg) {
		drawText(screen, line, w/2, loginBoxY+loginBoxH+22+float64(i)*16, 1, colorRed, text.AlignCenter)
	}

	left := (w - boardWidth) / 2
	drawText(screen, "TOP DRIVERS", left, boardTop-18, 1.2, colorScore, text.AlignStart)
	users := s.users()
	if len(users) == 0 {
		drawText(screen, "No drivers yet", left, boardTop+boardRowH/2, 1, colorMuted, text.AlignStart)
	}
	for i, u := range users {
		y := boardTop + float64(i)*boardRowH
		if i == s.selected {
			fillRect(screen, left-6, y, boardWidth+12, boardRowH, colorPanelEdge)
		}
		drawText(screen, leaderboardLine(i+1, u), left, y+boardRowH/2, 1.2, colorWhite, text.AlignStart)
	}

	help := "ENTER log in   UP/DOWN select   TAB use   DEL remove"
	drawText(screen, help, w/2, float64(config.GameWindowHeight)-40, 1, colorMuted, text.AlignCenter)
}
