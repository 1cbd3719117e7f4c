package cdcli

import (
	"fmt"

	"github.com/piliotov/BDM-sub000/lib/xmain"
)

func help(ms *xmain.State) {
	fmt.Fprintf(ms.Stdout, `Usage:
  %[1]s [--watch=false] layout file.json [out.json]
  %[1]s [--watch=false] route file.json [out.json]
  %[1]s validate file.json
  %[1]s bbox file.json

%[1]s prepares ConDec diagrams for editing.
Use - to read from stdin or write to stdout. Output defaults to stdout.

Flags:
%[2]s

Subcommands:
  %[1]s layout - Place every node with the force layout, then route every relation
  %[1]s route - Route every relation. Diagrams without coordinates are laid out first
  %[1]s validate - Report dangling references, duplicate ids and unknown relation types
  %[1]s bbox - Print the bounding box of all nodes after import
  %[1]s version - Print the version
`, ms.Name, ms.Opts.Help())
}
