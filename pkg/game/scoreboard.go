package game

import (
	"fmt"
	"log"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PlayerIdentity 当前登录的驾驶员
type PlayerIdentity struct {
	Name string
}

// UserRecord 单个驾驶员的持久化记录
type UserRecord struct {
	Name       string    `yaml:"name"`
	HighScore  int       `yaml:"highScore"` // 向下取整后的最高分
	LastPlayed time.Time `yaml:"lastPlayed"`
	LastRunID  string    `yaml:"lastRunId,omitempty"`
}

// Scoreboard 会话使用的记录存储
//
// 会话只在登录时调用 Identify、在每局结束时调用一次 RecordScore；
// 完整列表仅供登录界面的排行榜读取。
type Scoreboard interface {
	Identify(name string) (PlayerIdentity, error)
	RecordScore(id PlayerIdentity, finalScore float64, runID uuid.UUID) ([]UserRecord, error)
	Remove(id PlayerIdentity) ([]UserRecord, error)
	Users() []UserRecord
}

// 存储路径常量
// 属性名带版本号，结构变化时不会与旧记录混在一起
const (
	scoreboardObject   = "scoreboard"
	scoreboardProperty = "users_v2"
	scoreboardVersion  = 2
)

// scoreboardData 存储格式
type scoreboardData struct {
	Version int          `yaml:"version"`
	Users   []UserRecord `yaml:"users"`
}

// MaxPlayerNameLength 驾驶员名称最大长度
const MaxPlayerNameLength = 20

var playerNamePattern = regexp.MustCompile(`^[a-zA-Z0-9 ._@-]+$`)

// ValidatePlayerName 验证驾驶员名称
//
// 规则：
//   - 不能为空（首尾空格会被忽略）
//   - 长度不超过 20 个字符
//   - 只能包含字母、数字、空格和 . _ @ -
func ValidatePlayerName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("please enter a name to create a driver profile")
	}
	if len(name) > MaxPlayerNameLength {
		return fmt.Errorf("name must be at most %d characters", MaxPlayerNameLength)
	}
	if !playerNamePattern.MatchString(name) {
		return fmt.Errorf("name may only contain letters, digits, spaces and . _ @ -")
	}
	return nil
}

// IsPlayerNameRune 名称中允许出现的字符
func IsPlayerNameRune(r rune) bool {
	return playerNamePattern.MatchString(string(r))
}

// GdataScoreboard 基于 gdata 的本地记录存储
//
// gdataManager 为 nil 时进入降级模式：记录只保存在内存中。
// 读取或解析失败的数据被视为空列表，不会影响游戏。
type GdataScoreboard struct {
	gdataManager *gdata.Manager
	users        []UserRecord
	now          func() time.Time
}

// NewGdataScoreboard 创建记录存储并加载已有记录
//
// 参数：
//   - gdataManager: gdata 跨平台存储管理器，可为 nil（降级模式）
func NewGdataScoreboard(gdataManager *gdata.Manager) *GdataScoreboard {
	sb := &GdataScoreboard{
		gdataManager: gdataManager,
		now:          time.Now,
	}

	if err := sb.load(); err != nil {
		log.Printf("[Scoreboard] Warning: Failed to load records: %v (starting empty)", err)
		sb.users = nil
	}

	return sb
}

// load 从 gdata 读取记录
func (sb *GdataScoreboard) load() error {
	sb.users = nil

	if sb.gdataManager == nil {
		return nil
	}
	if !sb.gdataManager.ObjectPropExists(scoreboardObject, scoreboardProperty) {
		return nil
	}

	data, err := sb.gdataManager.LoadObjectProp(scoreboardObject, scoreboardProperty)
	if err != nil {
		return fmt.Errorf("failed to load scoreboard: %w", err)
	}

	var stored scoreboardData
	if err := yaml.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("failed to unmarshal scoreboard: %w", err)
	}
	if stored.Version != scoreboardVersion {
		return fmt.Errorf("unsupported scoreboard version %d", stored.Version)
	}

	sb.users = stored.Users
	log.Printf("[Scoreboard] Loaded %d records", len(sb.users))
	return nil
}

// save 写回 gdata，降级模式下直接返回
func (sb *GdataScoreboard) save() error {
	if sb.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(scoreboardData{Version: scoreboardVersion, Users: sb.users})
	if err != nil {
		return fmt.Errorf("failed to marshal scoreboard: %w", err)
	}
	if err := sb.gdataManager.SaveObjectProp(scoreboardObject, scoreboardProperty, data); err != nil {
		return fmt.Errorf("failed to save scoreboard: %w", err)
	}
	return nil
}

func (sb *GdataScoreboard) indexOf(name string) int {
	for i, u := range sb.users {
		if u.Name == name {
			return i
		}
	}
	return -1
}

// Identify 登录：已有记录则更新最后游玩时间，否则创建新记录
//
// 返回的错误只表示持久化失败，身份本身始终有效。
func (sb *GdataScoreboard) Identify(name string) (PlayerIdentity, error) {
	name = strings.TrimSpace(name)
	now := sb.now()

	if i := sb.indexOf(name); i >= 0 {
		sb.users[i].LastPlayed = now
	} else {
		sb.users = append(sb.users, UserRecord{Name: name, HighScore: 0, LastPlayed: now})
		log.Printf("[Scoreboard] Created record for %q", name)
	}

	return PlayerIdentity{Name: name}, sb.save()
}

// RecordScore 记录一局的最终分数，只保留最高分（向下取整）
//
// 返回：
//   - []UserRecord: 更新后的排行列表
//   - error: 持久化失败
func (sb *GdataScoreboard) RecordScore(id PlayerIdentity, finalScore float64, runID uuid.UUID) ([]UserRecord, error) {
	i := sb.indexOf(id.Name)
	if i < 0 {
		return sb.Users(), nil
	}

	if finalScore > float64(sb.users[i].HighScore) {
		sb.users[i].HighScore = int(math.Floor(finalScore))
	}
	sb.users[i].LastPlayed = sb.now()
	sb.users[i].LastRunID = runID.String()

	return sb.Users(), sb.save()
}

// Remove 删除驾驶员记录，不存在时忽略
func (sb *GdataScoreboard) Remove(id PlayerIdentity) ([]UserRecord, error) {
	i := sb.indexOf(id.Name)
	if i < 0 {
		return sb.Users(), nil
	}

	sb.users = append(sb.users[:i], sb.users[i+1:]...)
	log.Printf("[Scoreboard] Removed record for %q", id.Name)
	return sb.Users(), sb.save()
}

// Users 返回按最高分降序排列的记录副本
func (sb *GdataScoreboard) Users() []UserRecord {
	users := make([]UserRecord, len(sb.users))
	copy(users, sb.users)
	sort.SliceStable(users, func(a, b int) bool {
		if users[a].HighScore != users[b].HighScore {
			return users[a].HighScore > users[b].HighScore
		}
		return users[a].LastPlayed.After(users[b].LastPlayed)
	})
	return users
}
