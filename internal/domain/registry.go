package domain

// Dispatchable delivery unit standing on the grid.
type Agent struct {
	Location  Location
	Transport TransportClass
}

func (a Agent) Profile() TransportProfile { return a.Transport.Profile() }

// AgentRegistry is the fixed, ordered set of agents found on a Grid.
// Order is row-major scan order and is the tie-break order for dispatch.
type AgentRegistry struct {
	agents []Agent
}

func newAgentRegistry(cells [][]Cell) AgentRegistry {
	var agents []Agent
	for _, row := range cells {
		for _, cell := range row {
			if class, ok := cell.Type.TransportClass(); ok {
				agents = append(agents, Agent{Location: cell.Location, Transport: class})
			}
		}
	}
	return AgentRegistry{agents: agents}
}

// Agents returns a copy of the registered agents in registry order.
func (r AgentRegistry) Agents() []Agent {
	out := make([]Agent, len(r.agents))
	copy(out, r.agents)
	return out
}

func (r AgentRegistry) Len() int { return len(r.agents) }
