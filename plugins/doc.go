// Copyright 2021 The dispatch Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package plugins provides ready-made dispatch plugins.

Logger records every request sent and response received to a zap
logger:

	client := &dispatch.Client{
		Plugins: []dispatch.Plugin{plugins.NewLogger(logger)},
	}

Metrics counts requests sent and responses received in Prometheus
counters partitioned by HTTP method:

	m, err := plugins.NewMetrics(prometheus.DefaultRegisterer, "myapp")
	...
	client := &dispatch.Client{
		Plugins: []dispatch.Plugin{m},
	}
*/
package plugins
