// Package banner 决定当前应展示给访客的公告横幅。
package banner

import (
	"sort"
	"time"

	"fgblog/internal/model"
)

// ActiveAt 返回在 now 时刻处于启用状态且处于时间窗口内的公告，
// 按优先级降序、开始时间降序排列。结果不与入参共享内存。
func ActiveAt(announcements []model.Announcement, now time.Time) []model.Announcement {
	active := make([]model.Announcement, 0, len(announcements))
	for _, a := range announcements {
		if a.IsActive && inWindow(a, now) {
			active = append(active, detach(a))
		}
	}
	rank(active)
	return active
}

// Resolve 返回当前应展示的唯一横幅，没有可展示的公告时返回 nil。
// dismissedID 为访客最后一次关闭的公告，为空表示没有关闭记录。
// 返回值不与入参共享内存。
func Resolve(announcements []model.Announcement, dismissedID string, now time.Time) *model.Announcement {
	var best *model.Announcement
	for i := range announcements {
		a := announcements[i]
		if !a.IsActive || !a.IsBanner {
			continue
		}
		if dismissedID != "" && a.ID == dismissedID {
			continue
		}
		if !inWindow(a, now) {
			continue
		}
		if best == nil || ranksBefore(a, *best) {
			best = &a
		}
	}
	if best == nil {
		return nil
	}
	result := detach(*best)
	return &result
}

// detach 复制可空的结束时间，避免与调用方的切片元素共享指针
func detach(a model.Announcement) model.Announcement {
	if a.EndAt != nil {
		end := *a.EndAt
		a.EndAt = &end
	}
	return a
}

// 零值开始时间视为纪元（始终已开始），空或零值结束时间视为无结束
func inWindow(a model.Announcement, now time.Time) bool {
	if a.StartAt.After(now) {
		return false
	}
	if a.EndAt != nil && !a.EndAt.IsZero() && a.EndAt.Before(now) {
		return false
	}
	return true
}

func ranksBefore(a, b model.Announcement) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	return a.StartAt.After(b.StartAt)
}

func rank(items []model.Announcement) {
	sort.SliceStable(items, func(i, j int) bool {
		return ranksBefore(items[i], items[j])
	})
}
