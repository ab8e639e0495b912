package constant

// Banner is the short wordmark printed above the root command help.
const Banner = `  ┌─┐┌─┐┌─┐┌─┐┌┬┐┬ ┬┌─┐┬  ┬
  ├┤ ├─┤│  ├┤  │ │││├─┤│  │
  └  ┴ ┴└─┘└─┘ ┴ └┴┘┴ ┴┴─┘┴─┘`
