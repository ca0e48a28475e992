package version

import (
	"fmt"
	"io"
)

// Version information, set at build time through -ldflags "-X".
var (
	BuildTS   = "None"
	GitHash   = "None"
	GitBranch = "None"
	Version   = "None"
)

/*
无输入，输出格式化后的版本号

形如"v1.0.0-0123456"，提交哈希只保留前7位；构建时没有注入哈希则只返回Version
*/
func GetVersion() string {
	if GitHash != "" {
		h := GitHash
		if len(h) > 7 {
			h = h[:7]
		}
		return fmt.Sprintf("%s-%s", Version, h)
	}
	return Version
}

/*
输入一个写入目标，无输出

按"名称: 值"逐行写出版本号、分支、提交哈希和构建时间，version子命令把cmd.OutOrStdout()传进来
*/
func Printer(w io.Writer) {
	fmt.Fprintln(w, "Version:          ", GetVersion())
	fmt.Fprintln(w, "Git Branch:       ", GitBranch)
	fmt.Fprintln(w, "Git Commit:       ", GitHash)
	fmt.Fprintln(w, "Build Time (UTC): ", BuildTS)
}
