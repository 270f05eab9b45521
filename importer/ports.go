package importer

import (
	"fmt"
	"sync"
)

// portManager hands out ChromeDriver ports so concurrent Selenium fetches
// never collide.
type portManager struct {
	basePort  int
	portRange int
	taken     map[int]bool
	mutex     sync.Mutex
}

var (
	globalPortManager *portManager
	portManagerOnce   sync.Once
)

func initPortManager(basePort, portRange int) {
	portManagerOnce.Do(func() {
		globalPortManager = newPortManager(basePort, portRange)
	})
}

func newPortManager(basePort, portRange int) *portManager {
	taken := make(map[int]bool)
	for i := 0; i < portRange; i++ {
		taken[basePort+i] = false
	}
	return &portManager{
		basePort:  basePort,
		portRange: portRange,
		taken:     taken,
	}
}

func (pm *portManager) GetPort() (int, error) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	for i := 0; i < pm.portRange; i++ {
		port := pm.basePort + i
		if !pm.taken[port] {
			pm.taken[port] = true
			return port, nil
		}
	}
	return 0, fmt.Errorf("no available ports in range %d-%d", pm.basePort, pm.basePort+pm.portRange-1)
}

func (pm *portManager) ReleasePort(port int) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()
	pm.taken[port] = false
}
