package test

// Receiver payloads shared by the address vectors below
const (
	P2PKHHashHex   = "952aa26cd4bb1b2bbef7a3c6f3f869c73d4706cb"
	P2SHHashHex    = "0102030405060708090a0b0c0d0e0f1011121314"
	SaplingDataHex = "9743548442aba4fe5fc2eb0d0973461838dd21b6cfcd544d07bbd7178194bf05ae8eb70b2061e96d60ba51"
	OrchardDataHex = "6320bf4a6ae6013eaf23b3f9eca2742a1ab08edac3e8444cdd02e4d199b6cb7b534abb5fcf246b76c855a4"
	// Payload of the unknown (typecode 0x05) receiver in MainnetUnifiedUnknownOrchard
	UnknownDataHex = "a0a1a2a3a4a5a6a7a8a9"
)

// Mainnet vectors
const (
	MainnetP2PKH   = "t1XUKmDLFcRDxvf9A7tawmgePDN8NK6os35"
	MainnetP2SH    = "t3Jex1rKwuh1bQFRrKpKGWDcDVZ8bbQuNrB"
	MainnetSapling = "zs1jap4fpzz4wj0uh7zavxsju6xrqud6gdkelx4gng8h0t30qv5huz6ar4hpvsxr6tdvza9zasweve"
	MainnetTex     = "tex1j542ymx5hvdjh0hh50r087rfcu75wpktxztluj"
	MainnetTexZero = "tex1qqqqqqqqqqqqqqqqqqqqqqqqqqqqqqqq3xvlx7"
	// P2PKH + Sapling + Orchard
	MainnetUnified = "u1mq04mn6p50lvt0p4wdslweg8tffm3d0vn6tnyz4ry7dgrh35tw2ykzf7luh77qgsgl8wcl0a2fylvk3en5csd9nrhwdzvf8tdey9vfmuk98vj6de8msslwrh4rs06q8upcnsj5pqzq7vcestnlr08gjycj72z0pdpg02y2c2a2mcutardqpflq4p00udr7tktmyp99crfcfg6e2s30d"
	MainnetUnifiedOrchard        = "u1qgqtyww4xfuq5u4dudpgcp4twvdtdx70lwvmz9gjjlet57n7nc76megvdz4pqn56gn5afm30yqmf2xw7qadwl8swxaev8c26557cyk9x"
	MainnetUnifiedSapling        = "u1z053xwcyp5xxsza03m0r54dcut9288tyvwwlj70lsquzgnugtxp6n2clsxnceg92fmhe53awexzc8zu8rmrevd2kee4r02j4py4xeq5k"
	MainnetUnifiedP2SHSapling    = "u19kr2s36gghq39cflu25u8089fzaa02safgm62m6rfnteedkhezvvmlgcnl37v52wj2jearqp9en4kw932cum3knjgedmr7cs9rllxcwt4akzjqyx5dz6dmvn5ta9uwxx5ap7wk4nuxq"
	MainnetUnifiedUnknownOrchard = "u1x0swdr562g6ycjvlelj6swpsc84qlcjn9xmg278tc4ca350tajxuxfu76qjp29xagv6klty7p77vgndffkvm34xndh0c9unmy7rhdgwpuaehlh3sux6uu2jak2w"
	// Sprout address with an all-zero payload
	MainnetSprout = "zc8E5gYid86n4bo2Usdq1cpr7PpfoJGzttwBHEEgGhGkLUg7SPPVFNB2AkRFXZ7usfphup5426dt1buMmY3fkYeRrQGLa8y"
)

// Testnet vectors
const (
	TestnetP2PKH          = "tmPK563pf15jU4uLbnctgdMK8pMDBrEAmd4"
	TestnetP2SH           = "t26e94XS5n9cxwx1bFZKK3qnrc3MmURMBS5"
	TestnetSapling        = "ztestsapling1jap4fpzz4wj0uh7zavxsju6xrqud6gdkelx4gng8h0t30qv5huz6ar4hpvsxr6tdvza9z48u6td"
	TestnetTex            = "textest1j542ymx5hvdjh0hh50r087rfcu75wpktlv5fef"
	TestnetUnified        = "utest1p2em08wzg3k2czpafflr6j6l3l75tk6vhfd3jp6tuxv0aevk2cdx78779apnewalp0d0e00ttcj3nyh0pl0m738s09w4jpj76yn04cdcd35gja2m76df2psmqetefr3jsnzxgw8nzs42ur44y030dlf6uy4l82aa5l6n26rl8lv89c0sm8wcr66s204juhltu6kdytg0annjceatkh8"
	TestnetUnifiedOrchard = "utest15ta989jt2xerj70jdgrj29dqla8kz2vm2r5jk2a3x6p2rd9zwskqgzh68ef6k6wgskztgvazyrz5j7w9qk2879ntjdqs3nn92sw0840y"
)

// Regtest vectors
const (
	RegtestSapling        = "zregtestsapling1jap4fpzz4wj0uh7zavxsju6xrqud6gdkelx4gng8h0t30qv5huz6ar4hpvsxr6tdvza9z2r4h62"
	RegtestUnified        = "uregtest1lzdc6numvpyd53tr5leuy7gce0enrlydq9sulfw2q4w4g6xsh2d2nleh0x0snyk0xnppll0r2avx274rxx6uu5r9576w7gfjdmsq359qdhylh65n0nxvhx6y6qul3k3yesajs0h9jx3wv66tdvnrasahhuvdfkp7usgz8tfxzufy78s302c3cl3rwl3gsrr4va7rtqpu5hcqgpkraa3"
	RegtestUnifiedOrchard = "uregtest199zmrmkxgau87k0xshrslw6hqgv0f0kummt0ktwt5h94akt7pegsm6zrwdxh3xpk40a0fzndf2696mk407kuefxrntu49y4zv5gq6hnq"
)

// Malformed mainnet unified addresses. Each has a valid Bech32m checksum
const (
	MalformedUnifiedDuplicate = "u18erz2ajkhdq84zu26n4hauakgevx6e963a4q9d4cug2xz5uz8ymryvqw4p0du384phrmn49mmfwts7gqsjjvlkfpndxna2xlm737wjnuys4rxln5zfla8fdjfal47l2tjxnwvpgzl6qkrevueg4x4hyt0txh006kkxaxcyw7c7ae7jzzk5alcgv9xzek52um454kqmcs0e0nxvturau2c3ykcj8gdt9h3ag63t0w56nsfr8nd50fq875"
	MalformedUnifiedOrder     = "u1l0yapjpxal8vnf4nw4tmqtgxdmfl3rzy8qz48msz58vtq607kez3lwkea965jk6resgfrp0ujugunm7qsfjrhfgq906sc4dwwwlc3vchy0tecsqpwp5xj8gwfgnk7qpcjd62u0lqd89x9me7y6uftq55ajvx6rlv5g55lmc9ayfxyylx"
	MalformedUnifiedPadding   = "u18wevru3vr9ywujr79vtlrxf82mnk2fcze6cw8w7wvxf9ql7z80h3g3mdes3w5nvkv7m49008xsx4m8gwmk9z42qejgmtmflmucav4kk4"
	MalformedUnifiedBothP2    = "u1ykvxm6ve3tekwgkmxt645feny558qmfpw0y0g2fl0g0kvcytsa5r0la95809k2g6uzwd7l0w66rf6qjde4njujvnn7zdws70a4umtwuxhslxtaq4vvmr8rcr3x2xevnctels7qxeneev27cfxd7nzaqltzznf6fxn7yngy2hzqf6gc"
	MalformedUnifiedLength    = "u1zypurwpvgvrdkhum2fctxmxjz58frkyclyhaq99se5cvvlvkltyfc7xqnk9nkp55hv36ratlwk4nde3q3hr54u6zxrwy9eaqzjpaeusr0stze5gew4z2rau6463jn9fxgygr602wlplyx5wgqzt8cngzmuc84rsp29dkj04gk0j"
	MalformedUnifiedOverrun   = "u1lmmr6tp3f68g7vjt8dlsuhaxezqph9dtcnu0rcqte5gq2lgwd3h0rxzy5q6unw7ghtvhdm894kw5tna4yy0pzlacn050kmanj5aptvwn"
)

// Addresses encoded with the wrong Bech32 checksum variant for their kind
const (
	SaplingWithBech32m = "zs1jap4fpzz4wj0uh7zavxsju6xrqud6gdkelx4gng8h0t30qv5huz6ar4hpvsxr6tdvza9zgv74fm"
	TexWithBech32      = "tex1j542ymx5hvdjh0hh50r087rfcu75wpktn7mnes"
)
