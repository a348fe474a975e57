package dispatch

import "time"

// ServiceDayWindow 计算包含 now 的服务日窗口。
// 服务日从当天 boundaryHour 点开始，到次日同一时刻结束：
// 比如边界为 08:00 时，07:59 仍属于前一个服务日。
// 司机的"当日已指派"判定以这个窗口为准。
func ServiceDayWindow(now time.Time, boundaryHour int) (start, end time.Time) {
	start = time.Date(now.Year(), now.Month(), now.Day(), boundaryHour, 0, 0, 0, now.Location())
	if now.Before(start) {
		start = start.AddDate(0, 0, -1)
	}
	end = start.AddDate(0, 0, 1)
	return start, end
}

// ServiceDayID 服务日标识，取窗口起点的日期
func ServiceDayID(now time.Time, boundaryHour int) string {
	start, _ := ServiceDayWindow(now, boundaryHour)
	return start.Format("2006-01-02")
}
