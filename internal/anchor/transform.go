package anchor

import "sonicmigrate/internal/network"

// Retarget rewrites the document in place to point at the given network.
// It applies two independent rewrites; each one is skipped without error
// when the document does not have the expected shape, so partially
// populated or unusual Anchor.toml files still migrate.
func (d *Document) Retarget(net network.Network) []string {
	var changes []string
	if c, ok := d.rewriteCluster(net); ok {
		changes = append(changes, c)
	}
	if c, ok := d.relocatePrograms(net); ok {
		changes = append(changes, c)
	}
	return changes
}

// rewriteCluster replaces provider.cluster with the network endpoint URL.
// The prior value is irrelevant; anything that is a string gets replaced.
func (d *Document) rewriteCluster(net network.Network) (string, bool) {
	provider, ok := d.table(sectionProvider)
	if !ok {
		return "", false
	}
	prev, ok := provider[keyCluster].(string)
	if !ok {
		return "", false
	}
	provider[keyCluster] = net.Endpoint()
	return "updated provider.cluster from " + quoted(prev) + " to " + quoted(net.Endpoint()), true
}

// relocatePrograms renames the programs.localnet table to the section name
// of the target network, e.g. programs.testnet or programs.mainnet.
func (d *Document) relocatePrograms(net network.Network) (string, bool) {
	programs, ok := d.table(sectionPrograms)
	if !ok {
		return "", false
	}
	entry, ok := programs[keyLocalnet]
	if !ok {
		return "", false
	}
	delete(programs, keyLocalnet)
	programs[net.SectionName()] = entry
	return "moved programs.localnet to programs." + net.SectionName(), true
}

func quoted(s string) string {
	return "'" + s + "'"
}
