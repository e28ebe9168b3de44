package executor

/*
双人对战托管合约

玩法：

1. 管理员初始化注册表, 预言机初始化法币价格 (adminInit / oracleInit)
2. 创建： 报名费换算成法币分值并检查上下限, 托管报名费 -> challengeId (create)
3. 应战:  challengeId, 托管同额报名费 (accept)
4. 裁定:  管理员指定胜者, 胜者拿走全部奖池 2 * 报名费 (resolve)
5. 退款:  无人应战超过900秒后, 创建者取回报名费 (refund)

challengeId 由创建者地址和种子确定性导出, 每个对战有独立的托管账户地址

status: Created 1 -> Accepted 2 -> Completed 3
        Created 1 -> Cancelled 4

结算标志processing在首次支付时置位且不再清除, 重复裁定或退款直接报重入错误

//对外查询接口
//1. 按challengeId查询单个对战
//2. 按状态分页查询 (按照全局索引排序)
//3. 按创建者地址分页查询
//4. 管理员和预言机状态查询
*/
