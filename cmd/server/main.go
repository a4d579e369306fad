package main

import (
	"mimcstark/api"
	"mimcstark/common"
)

func main() {
	addr := common.ListenAddr()
	common.Log.Debugf("starting mimcstark verify server on %s", addr)

	r := api.NewEngine()
	if err := r.Run(addr); err != nil {
		common.Log.Panicf("verify server exited; %s", err.Error())
	}
}
