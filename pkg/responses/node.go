package responses

// ClusterNode describes a cluster member. Uptime is in milliseconds.
type ClusterNode struct {
	Name                          string `json:"name"`
	Uptime                        uint64 `json:"uptime"`
	RunQueue                      uint32 `json:"run_queue"`
	Processors                    uint32 `json:"processors"`
	OSPid                         uint32 `json:"os_pid"`
	FDTotal                       uint32 `json:"fd_total"`
	TotalErlangProcesses          uint32 `json:"total_erlang_processes"`
	SocketsTotal                  uint32 `json:"sockets_total"`
	MemoryHighWatermark           uint64 `json:"memory_high_watermark"`
	HasMemoryAlarmInEffect        bool   `json:"has_memory_alarm_in_effect"`
	FreeDiskSpaceLowWatermark     uint64 `json:"free_disk_space_low_watermark"`
	HasFreeDiskSpaceAlarmInEffect bool   `json:"has_free_disk_space_alarm_in_effect"`
	RatesMode                     string `json:"rates_mode"`
}

type ClusterIdentity struct {
	Name string `json:"name"`
}

var clusterNodeResource = resource[ClusterNode]{
	name: "cluster node",
	fields: []field[ClusterNode]{
		required("name", str, func(n *ClusterNode, v string) { n.Name = v }),
		required("uptime", u64, func(n *ClusterNode, v uint64) { n.Uptime = v }),
		required("run_queue", u32, func(n *ClusterNode, v uint32) { n.RunQueue = v }),
		required("processors", u32, func(n *ClusterNode, v uint32) { n.Processors = v }),
		required("os_pid", u32FromString, func(n *ClusterNode, v uint32) { n.OSPid = v }),
		required("fd_total", u32, func(n *ClusterNode, v uint32) { n.FDTotal = v }),
		required("proc_total", u32, func(n *ClusterNode, v uint32) { n.TotalErlangProcesses = v }),
		required("sockets_total", u32, func(n *ClusterNode, v uint32) { n.SocketsTotal = v }),
		required("mem_limit", u64, func(n *ClusterNode, v uint64) { n.MemoryHighWatermark = v }),
		required("mem_alarm", boolean, func(n *ClusterNode, v bool) { n.HasMemoryAlarmInEffect = v }),
		required("disk_free_limit", u64, func(n *ClusterNode, v uint64) { n.FreeDiskSpaceLowWatermark = v }),
		required("disk_free_alarm", boolean, func(n *ClusterNode, v bool) { n.HasFreeDiskSpaceAlarmInEffect = v }),
		required("rates_mode", str, func(n *ClusterNode, v string) { n.RatesMode = v }),
	},
}

var clusterIdentityResource = resource[ClusterIdentity]{
	name: "cluster identity",
	fields: []field[ClusterIdentity]{
		required("name", str, func(c *ClusterIdentity, v string) { c.Name = v }),
	},
}

func ParseClusterNode(raw []byte) (*ClusterNode, error) {
	return clusterNodeResource.one(raw)
}

func ParseClusterNodeList(raw []byte) ([]ClusterNode, error) {
	return clusterNodeResource.list(raw)
}

func ParseClusterIdentity(raw []byte) (*ClusterIdentity, error) {
	return clusterIdentityResource.one(raw)
}
