package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// stubScene 测试用空场景
type stubScene struct {
	name string
}

func (s *stubScene) Update(deltaTime float64)  {}
func (s *stubScene) Draw(screen *ebiten.Image) {}

// TestDetailRoute 测试详情页路由的构造与解析往返
func TestDetailRoute(t *testing.T) {
	tests := []struct {
		name     string
		planetID string
	}{
		{"Simple id", "mars"},
		{"Id with hyphen", "kuiper-belt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			route := DetailRoute(tt.planetID)
			got, err := ParseDetailRoute(route)
			if err != nil {
				t.Fatalf("ParseDetailRoute(%q) error: %v", route, err)
			}
			if got != tt.planetID {
				t.Errorf("round trip: got %q, expected %q", got, tt.planetID)
			}
		})
	}

	if DetailRoute("mars") != "planet?planet=mars" {
		t.Errorf("DetailRoute(mars) = %q, expected planet?planet=mars", DetailRoute("mars"))
	}
}

// TestParseDetailRouteInvalid 非法路由返回错误
func TestParseDetailRouteInvalid(t *testing.T) {
	tests := []struct {
		name  string
		route string
	}{
		{"Wrong page", "moon?planet=mars"},
		{"Missing query", "planet"},
		{"Empty planet", "planet?planet="},
		{"Garbage", "://"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseDetailRoute(tt.route); err == nil {
				t.Errorf("ParseDetailRoute(%q) should fail", tt.route)
			}
		})
	}
}

// TestSceneManagerNavigate 测试按路由切换场景
func TestSceneManagerNavigate(t *testing.T) {
	sm := NewSceneManager()

	mapScene := &stubScene{name: "map"}
	sm.SetMapSceneFactory(func() Scene { return mapScene })

	var requested []string
	detail := &stubScene{name: "detail"}
	sm.SetDetailSceneFactory(func(planetID string) Scene {
		requested = append(requested, planetID)
		return detail
	})

	sm.Navigate("map")
	if sm.GetCurrentScene() != mapScene {
		t.Fatal("Navigate(map) should switch to the map scene")
	}

	sm.Navigate(DetailRoute("neptune"))
	if sm.GetCurrentScene() != detail {
		t.Fatal("Navigate(detail route) should switch to the detail scene")
	}
	if len(requested) != 1 || requested[0] != "neptune" {
		t.Errorf("detail factory calls = %v, expected [neptune]", requested)
	}

	// 非法路由：保持当前场景
	sm.Navigate("bogus?x=1")
	if sm.GetCurrentScene() != detail {
		t.Error("invalid route must not switch scenes")
	}
}

// TestSceneManagerNoFactory 工厂未设置时 Navigate 不崩溃也不切换
func TestSceneManagerNoFactory(t *testing.T) {
	sm := NewSceneManager()
	sm.Navigate("map")
	sm.Navigate(DetailRoute("mars"))
	if sm.GetCurrentScene() != nil {
		t.Error("Navigate without factories must leave no active scene")
	}

	// 没有活动场景时 Update/Draw 是无操作
	sm.Update(1.0 / 60.0)
	sm.Draw(nil)
}
