package main

import (
	"github.com/piliotov/BDM-sub000/cdcli"
	"github.com/piliotov/BDM-sub000/lib/xmain"
)

func main() {
	xmain.Main(cdcli.Run)
}
