package envconfig

/*
环境变量配置

本项目没有配置文件，只读取少量环境变量：
- SELFADJUST_DEBUG：日志级别（0/false 为 INFO，1/true 为 DEBUG，2 为 TRACE）
- SELFADJUST_CAPACITY：演示程序中动态数组的初始容量
*/

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/strive/selfadjusting/logutil"
)

// DefaultCapacity 未设置 SELFADJUST_CAPACITY 时的数组初始容量
const DefaultCapacity = 5

// Var 读取环境变量并去掉两端的引号和空格
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// LogLevel 根据 SELFADJUST_DEBUG 返回日志级别
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("SELFADJUST_DEBUG"); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			if b {
				level = slog.LevelDebug
			}
		} else if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			level = slog.Level(i * -4)
		} else {
			level = slog.LevelDebug
		}
	}
	return level
}

// Uint 返回读取无符号整数环境变量的函数，解析失败时记录日志并使用默认值
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

// MaxCapacity SELFADJUST_CAPACITY 和 --capacity 允许的最大值
const MaxCapacity = 1 << 20

var capacity = Uint("SELFADJUST_CAPACITY", DefaultCapacity)

// Capacity 演示程序中动态数组的初始容量，超过 MaxCapacity 时记录日志并使用 MaxCapacity
func Capacity() uint {
	n := capacity()
	if n > MaxCapacity {
		slog.Warn("environment variable exceeds maximum, clamping", "key", "SELFADJUST_CAPACITY", "value", n, "max", MaxCapacity)
		return MaxCapacity
	}
	return n
}

type EnvVar struct {
	Name        string
	Value       any
	Description string
}

func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"SELFADJUST_DEBUG":    {"SELFADJUST_DEBUG", levelName(LogLevel()), "Show additional debug information (e.g. SELFADJUST_DEBUG=1, 2 for trace)"},
		"SELFADJUST_CAPACITY": {"SELFADJUST_CAPACITY", Capacity(), fmt.Sprintf("Initial capacity of the demo array (default %d)", DefaultCapacity)},
	}
}

func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}

// levelName 把 TRACE 级别显示为名字而不是 DEBUG-4
func levelName(level slog.Level) string {
	if level == logutil.LevelTrace {
		return "TRACE"
	}
	return level.String()
}
