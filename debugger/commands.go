package debugger

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/jetsetilly/testds/hardware/geometry"
	"github.com/jetsetilly/testds/hardware/spec"
	"github.com/jetsetilly/testds/logger"
)

// returns true if debugger is to quit
func (m *debugger) commands(cmd []string) bool {
	if len(cmd) == 0 {
		return false
	}

	switch strings.ToUpper(cmd[0]) {
	case "R", "RUN":
		return m.run()

	case "F", "FRAME", "STEP":
		m.frame()

	case "SCRIPT":
		if len(cmd) < 2 {
			fmt.Println(m.styles.err.Render(
				"SCRIPT requires a filename",
			))
			break // switch
		}
		if m.script(cmd[1]) {
			return true
		}

	case "SCENE":
		if len(cmd) < 2 {
			var names []string
			for n := range geometry.Scenes {
				names = append(names, n)
			}
			sort.Strings(names)
			fmt.Println(m.styles.geometry.Render(
				fmt.Sprintf("scenes: %s", strings.Join(names, " ")),
			))
			break // switch
		}

		err := m.console.Geometry.Scene(strings.ToUpper(cmd[1]))
		if err != nil {
			fmt.Println(m.styles.err.Render(err.Error()))
			break // switch
		}
		m.frame()

	case "THREADED":
		if len(cmd) < 2 {
			fmt.Println(m.styles.err.Render(
				"THREADED requires ON or OFF",
			))
			break // switch
		}
		switch strings.ToUpper(cmd[1]) {
		case "ON":
			m.console.GPU.SetThreaded(true)
		case "OFF":
			m.console.GPU.SetThreaded(false)
		default:
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("cannot use THREADED %s", cmd[1]),
			))
		}

	case "GPU":
		fmt.Println(m.styles.gpu.Render(
			m.console.GPU.String(),
		))

	case "VRAM":
		fmt.Println(m.styles.mem.Render(
			m.console.VRAM.String(),
		))

	case "GEOMETRY":
		ct := m.console.Geometry.PolygonCount()
		fmt.Println(m.styles.geometry.Render(
			fmt.Sprintf("%d polygons", ct),
		))
		for i := 0; i < ct; i++ {
			p := m.console.Geometry.Polygon(i)
			fmt.Println(m.styles.geometry.Render(
				fmt.Sprintf("%03d: %d vertices, %s, %s, id %d",
					i, len(p.Vertices), p.Mode, p.TextureFmt, p.ID),
			))
		}

	case "TOON":
		if len(cmd) < 3 {
			fmt.Println(m.styles.err.Render(
				"TOON requires an index and a value",
			))
			break // switch
		}
		idx, err := strconv.ParseUint(cmd[1], 0, 16)
		if err != nil || idx >= spec.ToonTableLen {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("cannot use TOON index %s", cmd[1]),
			))
			break // switch
		}
		val, err := strconv.ParseUint(cmd[2], 0, 16)
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("cannot use TOON value %s", cmd[2]),
			))
			break // switch
		}
		m.console.GPU.WriteToonTable(int(idx), 0xffff, uint16(val))

	case "CLEARCOLOUR":
		if len(cmd) < 2 {
			fmt.Println(m.styles.err.Render(
				"CLEARCOLOUR requires a value",
			))
			break // switch
		}
		val, err := strconv.ParseUint(cmd[1], 0, 32)
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("cannot use CLEARCOLOUR %s", cmd[1]),
			))
			break // switch
		}
		m.console.GPU.WriteClearColor(0xffffffff, uint32(val))

	case "CLEARDEPTH":
		if len(cmd) < 2 {
			fmt.Println(m.styles.err.Render(
				"CLEARDEPTH requires a value",
			))
			break // switch
		}
		val, err := strconv.ParseUint(cmd[1], 0, 16)
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("cannot use CLEARDEPTH %s", cmd[1]),
			))
			break // switch
		}
		m.console.GPU.WriteClearDepth(0xffff, uint16(val))

	case "CTRL":
		if len(cmd) < 2 {
			fmt.Println(m.styles.gpu.Render(
				fmt.Sprintf("DISP3DCNT: %#04x", m.console.GPU.Disp3DCnt()),
			))
			break // switch
		}
		val, err := strconv.ParseUint(cmd[1], 0, 16)
		if err != nil {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("cannot use CTRL %s", cmd[1]),
			))
			break // switch
		}
		m.console.GPU.WriteDisp3DCnt(0xffff, uint16(val))

	case "PEEK":
		if len(cmd) < 3 {
			fmt.Println(m.styles.err.Render(
				"PEEK requires an x and y coordinate",
			))
			break // switch
		}
		x, errX := strconv.Atoi(cmd[1])
		y, errY := strconv.Atoi(cmd[2])
		if errX != nil || errY != nil || x < 0 || x >= spec.Width || y < 0 || y >= spec.Height {
			fmt.Println(m.styles.err.Render(
				fmt.Sprintf("cannot use PEEK %s %s", cmd[1], cmd[2]),
			))
			break // switch
		}
		p := m.console.GPU.Pixel(x, y)
		fmt.Println(m.styles.gpu.Render(
			fmt.Sprintf("(%d,%d): %#08x r=%02d g=%02d b=%02d a=%02d",
				x, y, p, p&0x3f, (p>>6)&0x3f, (p>>12)&0x3f, (p>>18)&0x3f),
		))

	case "LOG":
		switch len(cmd) {
		case 1:
			logger.Tail(os.Stdout, -1)
		case 2:
			n, err := strconv.Atoi(cmd[1])
			if err != nil {
				fmt.Println(m.styles.err.Render(
					fmt.Sprintf("cannot use LOG %s", cmd[1]),
				))
				break // switch
			}
			logger.Tail(os.Stdout, n)
		}

	case "QUIT":
		return true

	default:
		fmt.Println(m.styles.err.Render(
			fmt.Sprintf("unrecognised command: %s", strings.Join(cmd, " ")),
		))
	}

	return false
}

// script runs each line of a file through the command processor. comment
// lines begin with #. returns true if a command in the script quits the
// debugger
func (m *debugger) script(filename string) bool {
	f, err := os.Open(filename)
	if err != nil {
		fmt.Println(m.styles.err.Render(err.Error()))
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		s := strings.TrimSpace(scanner.Text())
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if m.commands(strings.Fields(s)) {
			return true
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Println(m.styles.err.Render(err.Error()))
	}

	return false
}
